// Package protocol defines the line protocol of the serve command.
//
//	CREATE <challengeHex> <limit> <timeoutSeconds>  ->  KEY <keyHex>
//	VERIFY <keyHex> <challengeHex>                  ->  BITS <n>
//	anything that fails                             ->  ERROR <reason>
package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	CmdCreate = "CREATE"
	CmdVerify = "VERIFY"
	CmdKey    = "KEY"
	CmdBits   = "BITS"
	CmdError  = "ERROR"
)

type Message struct {
	Command string
	Args    []string
}

// Parse splits one request or response line.
func Parse(line string) (Message, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Message{}, fmt.Errorf("empty message")
	}
	return Message{Command: fields[0], Args: fields[1:]}, nil
}

func (m *Message) String() string {
	if len(m.Args) == 0 {
		return m.Command
	}
	return m.Command + " " + strings.Join(m.Args, " ")
}

// CreateRequest is a parsed CREATE.
type CreateRequest struct {
	Challenge      string
	Limit          int
	TimeoutSeconds int
}

// ParseCreate validates the argument count and numbers of a CREATE message.
// Hex arguments are left to the caller.
func ParseCreate(m Message) (CreateRequest, error) {
	if m.Command != CmdCreate || len(m.Args) != 3 {
		return CreateRequest{}, fmt.Errorf("usage: %s <challenge> <limit> <timeout>", CmdCreate)
	}
	limit, err := strconv.Atoi(m.Args[1])
	if err != nil {
		return CreateRequest{}, fmt.Errorf("invalid limit: %w", err)
	}
	timeout, err := strconv.Atoi(m.Args[2])
	if err != nil {
		return CreateRequest{}, fmt.Errorf("invalid timeout: %w", err)
	}
	if timeout < 0 {
		return CreateRequest{}, fmt.Errorf("timeout must not be negative")
	}
	return CreateRequest{Challenge: m.Args[0], Limit: limit, TimeoutSeconds: timeout}, nil
}

// VerifyRequest is a parsed VERIFY.
type VerifyRequest struct {
	Key       string
	Challenge string
}

func ParseVerify(m Message) (VerifyRequest, error) {
	if m.Command != CmdVerify || len(m.Args) != 2 {
		return VerifyRequest{}, fmt.Errorf("usage: %s <key> <challenge>", CmdVerify)
	}
	return VerifyRequest{Key: m.Args[0], Challenge: m.Args[1]}, nil
}

func NewCreate(challengeHex string, limit, timeoutSeconds int) Message {
	return Message{Command: CmdCreate, Args: []string{challengeHex, strconv.Itoa(limit), strconv.Itoa(timeoutSeconds)}}
}

func NewVerify(keyHex, challengeHex string) Message {
	return Message{Command: CmdVerify, Args: []string{keyHex, challengeHex}}
}

func NewKey(keyHex string) Message {
	return Message{Command: CmdKey, Args: []string{keyHex}}
}

func NewBits(n int) Message {
	return Message{Command: CmdBits, Args: []string{strconv.Itoa(n)}}
}

// NewError flattens reason onto one line.
func NewError(reason string) Message {
	return Message{Command: CmdError, Args: strings.Fields(reason)}
}
