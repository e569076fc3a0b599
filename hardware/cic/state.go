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

package cic

import (
	"fmt"
	"strings"
)

// State of a CIC session.
type State int

// List of valid State values.
const (
	Idle State = iota
	Handshake
	SeedDelivery
	ChecksumDelivery
	RegionInit
	AwaitInitialNibbles
	CommandDispatch
	CompareChallenge
	Variant2Challenge
	ResetAck
	Lockup

	// the session has ended normally after a ResetAck
	Finished

	// the session was ended by the AbortQuery
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Handshake:
		return "handshake"
	case SeedDelivery:
		return "seed delivery"
	case ChecksumDelivery:
		return "checksum delivery"
	case RegionInit:
		return "region init"
	case AwaitInitialNibbles:
		return "await initial nibbles"
	case CommandDispatch:
		return "command dispatch"
	case CompareChallenge:
		return "compare challenge"
	case Variant2Challenge:
		return "variant-2 challenge"
	case ResetAck:
		return "reset ack"
	case Lockup:
		return "lockup"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("unknown state (%d)", int(s))
}

// Command is the two bit value sent by the PIF to select the next exchange.
type Command uint8

// List of valid Command values. The value of each Command is the bit pattern
// sent over the bus, high bit first.
const (
	CmdCompare  Command = 0b00
	CmdDie      Command = 0b01
	CmdVariant2 Command = 0b10
	CmdReset    Command = 0b11
)

func (c Command) String() string {
	switch c & 0b11 {
	case CmdCompare:
		return "compare"
	case CmdDie:
		return "die"
	case CmdVariant2:
		return "variant2"
	}
	return "reset"
}

// ParseCommand accepts either the command name or the bit pattern of the
// command.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "00", "compare":
		return CmdCompare, nil
	case "01", "die":
		return CmdDie, nil
	case "10", "variant2":
		return CmdVariant2, nil
	case "11", "reset":
		return CmdReset, nil
	}
	return CmdDie, fmt.Errorf("cic: unrecognised command: %s", s)
}

// ParseCommands splits a comma separated list of commands.
func ParseCommands(s string) ([]Command, error) {
	var cmds []Command
	if strings.TrimSpace(s) == "" {
		return cmds, nil
	}
	for _, f := range strings.Split(s, ",") {
		c, err := ParseCommand(f)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// dispatch selects the state for a command. Anything that isn't a recognised
// command causes the CIC to lock up.
func dispatch(cmd Command) State {
	switch cmd {
	case CmdCompare:
		return CompareChallenge
	case CmdVariant2:
		return Variant2Challenge
	case CmdReset:
		return ResetAck
	}
	return Lockup
}

// next returns the successor of every state that has exactly one.
func next(s State) State {
	switch s {
	case Idle:
		return Handshake
	case Handshake:
		return SeedDelivery
	case SeedDelivery:
		return ChecksumDelivery
	case ChecksumDelivery:
		return RegionInit
	case RegionInit:
		return AwaitInitialNibbles
	case AwaitInitialNibbles:
		return CommandDispatch
	case CompareChallenge:
		return CommandDispatch
	case Variant2Challenge:
		return CommandDispatch
	}
	panic(fmt.Sprintf("cic: %s has no single successor", s))
}
