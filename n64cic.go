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
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/ecpkart64/n64cic/console"
	"github.com/ecpkart64/n64cic/hardware/cic"
	"github.com/ecpkart64/n64cic/hardware/cic/pif"
	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
	"github.com/ecpkart64/n64cic/logger"
	"github.com/ecpkart64/n64cic/modalflag"
	"github.com/ecpkart64/n64cic/random"
	"github.com/ecpkart64/n64cic/statsview"
	"github.com/ecpkart64/n64cic/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible. takes an optional int
	// argument, the exit status
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func (sync *mainSync) quit(code int) {
	sync.state <- stateRequest{req: reqQuit, args: code}
}

// exit codes
const (
	exitParse   = 10
	exitMode    = 20
	exitFailure = 30
)

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "VECTORS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit(0)
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit(exitParse)
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync, os.Stdout)

	case "VECTORS":
		err = vectorsMode(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if _, ok := err.(verifyError); ok {
			sync.quit(exitFailure)
		} else {
			sync.quit(exitMode)
		}
		return
	}

	sync.quit(0)
}

// verifyError is returned by run() when the session did not go as the PIF
// expected.
type verifyError struct {
	error
}

// sessionFlags are the flags shared by the RUN and VECTORS modes.
type sessionFlags struct {
	region   *regionFlag
	seed     *byteFlag
	checksum *nibblesFlag
	initial  *nibblesFlag
	commands *commandsFlag
	variant2 *nibblesFlag
	randSeed *uint
}

func addSessionFlags(md *modalflag.Modes) sessionFlags {
	k := cic.CIC6102()

	f := sessionFlags{
		region:   &regionFlag{region: cic.NTSC},
		seed:     &byteFlag{v: k.Seed},
		checksum: newNibblesFlag(k.Checksum),
		initial:  newNibblesFlag(make([]scratch.Nibble, 2)),
		commands: &commandsFlag{cmds: []cic.Command{cic.CmdCompare, cic.CmdVariant2, cic.CmdCompare, cic.CmdReset}},
		variant2: newNibblesFlag(make([]scratch.Nibble, scratch.SecondarySize)),
	}

	md.AddVar(f.region, "region", "region of the console: NTSC or PAL")
	md.AddVar(f.seed, "seed", "seed byte of the CIC")
	md.AddVar(f.checksum, "checksum", "checksum of the CIC (12 nibbles)")
	md.AddVar(f.initial, "init", "initial nibbles sent by the PIF (2 nibbles or random)")
	md.AddVar(f.commands, "commands", "commands sent by the PIF: compare, variant2, reset or die")
	md.AddVar(f.variant2, "variant2", "challenge for every variant2 command (30 nibbles or random)")
	f.randSeed = md.AddUint("randseed", 0, "seed for random values. zero for a time based seed")

	return f
}

func (f sessionFlags) config() (cic.Config, pif.Session) {
	cfg := cic.DefaultConfig(f.region.region)
	cfg.Constants.Seed = f.seed.v
	cfg.Constants.Checksum = f.checksum.n

	rnd := random.NewRandom(int64(*f.randSeed))
	if f.initial.random || f.variant2.random {
		logger.Logf(logger.Allow, "pif", "random seed %d", rnd.Seed())
	}

	sess := pif.Session{
		Commands: f.commands.cmds,
	}
	copy(sess.Initial[:], f.initial.values(rnd))
	for _, c := range sess.Commands {
		if c == cic.CmdVariant2 {
			sess.Variant2 = append(sess.Variant2, f.variant2.values(rnd))
		}
	}

	return cfg, sess
}

func run(md *modalflag.Modes, sync *mainSync, output io.Writer) error {
	md.NewMode()

	sf := addSessionFlags(md)
	wav := md.AddString("wav", "", "capture the bus to a WAV file")
	log := md.AddBool("log", false, "echo log entries to stderr")
	abort := md.AddBool("abort", false, "abort the session when 'A' is typed")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "run the stats server")
	}

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	cfg, sess := sf.config()

	var con *console.Console

	args := sessionArgs{
		cfg:  cfg,
		sess: sess,
		wav:  *wav,
		quit: func() {
			// the terminal must be restored before the program exits
			if con != nil {
				_ = con.Close()
			}
			sync.quit(0)
		},
	}

	if *abort {
		con, err = console.Open(os.Stdin, console.DefaultTrigger)
		if err != nil {
			return err
		}
		defer con.Close()
		args.abort = con
	}

	if err := runSession(output, args); err != nil {
		return verifyError{err}
	}

	return nil
}

func vectorsMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	sf := addSessionFlags(md)

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	cfg, sess := sf.config()
	return vectors(output, cfg, sess)
}
