// This file is part of n64cic.
//
// n64cic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64cic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64cic.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ecpkart64/n64cic/hardware/cic"
	"github.com/ecpkart64/n64cic/hardware/cic/pif"
	"github.com/ecpkart64/n64cic/hardware/cic/wire"
	"github.com/ecpkart64/n64cic/logger"
	"github.com/ecpkart64/n64cic/wavwriter"
)

// the number of bus levels kept by the monitor. a long session of variant-2
// challenges is about 600 levels per challenge
const historyLimit = 65536

// sessionArgs describes a single simulated session.
type sessionArgs struct {
	cfg   cic.Config
	sess  pif.Session
	abort cic.AbortQuery

	// filename for the WAV capture. empty for no capture
	wav string

	// called when the session cannot end by returning from Run(). the
	// session goroutine ends immediately afterwards
	quit func()
}

// runSession runs the CIC against the simulated PIF and writes the transcript
// to output. Sessions that end with a lockup or with the PIF stopping the
// clock never return. The quit function in the arguments is called instead.
func runSession(output io.Writer, args sessionArgs) error {
	p, err := pif.NewPIF(args.cfg, args.sess)
	if err != nil {
		return err
	}

	mon := wire.NewMonitor(p, historyLimit)

	c, err := cic.NewCIC(args.cfg, mon, args.abort)
	if err != nil {
		return err
	}

	var markers []cic.Marker

	finish := func(st cic.State) error {
		transcript(output, p, markers, st)

		if args.wav != "" {
			aw, err := wavwriter.New(args.wav)
			if err != nil {
				return err
			}
			aw.Add(mon.History())
			if err := aw.Write(); err != nil {
				return err
			}
		}

		err := p.Verify()

		// an aborted session is incomplete by definition
		if st == cic.Aborted && errors.Is(err, pif.ErrIncomplete) {
			err = nil
		}

		if err != nil {
			fmt.Fprintln(output, styleBad.Render(fmt.Sprintf("failed: %v", err)))
			return err
		}
		fmt.Fprintln(output, styleGood.Render("verified"))
		return nil
	}

	// neither of these two ways of ending a session return from Run()
	endWithoutReturn := func(st cic.State) {
		if err := finish(st); err != nil {
			logger.Logf(logger.Allow, "session", "%v", err)
		}
		if args.quit != nil {
			args.quit()
		}
		runtime.Goexit()
	}

	c.SetMarkerHook(func(m cic.Marker) {
		markers = append(markers, m)
		if m == cic.MarkerLockup {
			endWithoutReturn(cic.Lockup)
		}
	})

	p.OnStall = func() {
		endWithoutReturn(c.State())
	}

	st, err := c.Run()
	if err != nil {
		return err
	}

	return finish(st)
}

func transcript(output io.Writer, p *pif.PIF, markers []cic.Marker, st cic.State) {
	for _, f := range p.Fields() {
		if len(f.Bits) == 0 {
			continue
		}

		value := f.Value()
		if !f.Match() {
			value = fmt.Sprintf("%s %s", styleBad.Render(value), styleMarker.Render("expected "+f.ExpectedValue()))
		}

		fmt.Fprintf(output, "%s %s %s\n",
			directionStyle(f.Dir).Render(f.Dir.String()),
			styleLabel.Render(fmt.Sprintf("%-22s", f.Label)),
			value)
	}

	s := make([]string, 0, len(markers))
	for _, m := range markers {
		s = append(s, m.String())
	}
	fmt.Fprintf(output, "%s %s\n", styleLabel.Render("markers"), styleMarker.Render(strings.Join(s, " ")))

	done, planned := p.Cycles()
	fmt.Fprintf(output, "%s %s after %d of %d cycles\n", styleLabel.Render("state"), st, done, planned)
}

// vectors writes the bits the CIC is expected to send during a session.
func vectors(output io.Writer, cfg cic.Config, sess pif.Session) error {
	p, err := pif.NewPIF(cfg, sess)
	if err != nil {
		return err
	}

	for _, f := range p.Fields() {
		if f.Dir != pif.FromCIC {
			continue
		}
		fmt.Fprintf(output, "%s %s\n", styleLabel.Render(fmt.Sprintf("%-22s", f.Label)), f.ExpectedValue())
	}

	return nil
}
