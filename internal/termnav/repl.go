/*
 * Copyright (c) 2026. AXIOM STUDIO AI Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package termnav

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// DriverOptions controls listing and display.
type DriverOptions struct {
	ShowHidden bool
	Indexed    bool
	Results    int
}

// Driver runs the navigation loop for one session.
type Driver struct {
	session  *Session
	builder  *OptionBuilder
	resolver *Resolver
	display  Display
	selector Selector
	out      io.Writer
	logger   *Logger
	opts     DriverOptions
}

// NewDriver wires a driver. The final path, and nothing else, is written
// to out.
func NewDriver(session *Session, builder *OptionBuilder, resolver *Resolver, display Display, selector Selector, out io.Writer, logger *Logger, opts DriverOptions) *Driver {
	if logger == nil {
		logger = &Logger{}
	}
	return &Driver{
		session:  session,
		builder:  builder,
		resolver: resolver,
		display:  display,
		selector: selector,
		out:      out,
		logger:   logger,
		opts:     opts,
	}
}

// Run loops until the user finalizes or cancels. A nil error means the
// process should exit successfully.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("start in %s", d.session.Origin())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := d.step(ctx)
		if err != nil {
			if !errors.Is(err, ErrInterrupted) {
				d.logger.Error("%s: %v", d.session.Current(), err)
			}
			return err
		}

		if d.session.Apply(action) == Continue {
			continue
		}
		if action.Kind == ActionFinalize {
			d.logger.Info("finalize %s", d.session.Current())
			if _, err := fmt.Fprintln(d.out, d.session.Current()); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		} else {
			d.logger.Info("cancelled in %s", d.session.Current())
		}
		return nil
	}
}

// step performs one iteration up to, but not including, applying the
// resolved action.
func (d *Driver) step(ctx context.Context) (Action, error) {
	current := d.session.Current()
	d.display.Refresh(d.session.Origin(), current)

	opts, err := d.builder.Build(current, d.opts.ShowHidden, d.opts.Indexed)
	if err != nil {
		return Action{}, fmt.Errorf("list directory: %w", err)
	}
	d.logger.Debug("%s: %d options", current, opts.Len())

	index, ok, err := d.selector.Select(ctx, SelectRequest{Items: opts.Labels, Results: d.opts.Results})
	if err != nil {
		return Action{}, err
	}

	action, err := d.resolver.Resolve(ctx, d.session, opts, index, ok)
	if err != nil {
		return Action{}, err
	}
	d.logger.Debug("chose %d (ok=%t): %s %s", index, ok, action.Kind, action.Name)
	return action, nil
}

// ExitCode maps a Run error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInterrupted):
		return 130
	default:
		return 1
	}
}
