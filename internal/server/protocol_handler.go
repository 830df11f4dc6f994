package server

import (
	"bufio"
	"fmt"
	"net"
	"strings"

	"hashcash/internal/config"
	"hashcash/internal/hashcash"
	"hashcash/internal/interfaces"
	"hashcash/internal/protocol"
)

// protocolHandler serves the requests of one connection.
type protocolHandler struct {
	id      string
	conn    net.Conn
	reader  *bufio.Reader
	service interfaces.HashcashService
	metrics interfaces.MetricsCollector
	logger  interfaces.Logger
	config  *config.Config
}

// readLine returns the next line without its terminator.
func (h *protocolHandler) readLine() (string, error) {
	line, err := h.reader.ReadSlice('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(line), "\r\n"), nil
}

func (h *protocolHandler) write(m protocol.Message) error {
	_, err := fmt.Fprintf(h.conn, "%s\n", m.String())
	return err
}

func (h *protocolHandler) handle(line string) protocol.Message {
	msg, err := protocol.Parse(line)
	if err != nil {
		return h.fail(err)
	}

	switch msg.Command {
	case protocol.CmdCreate:
		return h.handleCreate(msg)
	case protocol.CmdVerify:
		return h.handleVerify(msg)
	default:
		return h.fail(fmt.Errorf("unknown command %q", msg.Command))
	}
}

func (h *protocolHandler) handleCreate(msg protocol.Message) protocol.Message {
	req, err := protocol.ParseCreate(msg)
	if err != nil {
		return h.fail(err)
	}
	if req.TimeoutSeconds > h.config.MaxSearchTimeout {
		return h.fail(fmt.Errorf("timeout %ds exceeds the %ds limit", req.TimeoutSeconds, h.config.MaxSearchTimeout))
	}
	challenge, err := hashcash.DecodeChallenge(req.Challenge)
	if err != nil {
		return h.fail(fmt.Errorf("challenge: %w", err))
	}

	key, err := h.service.Create(challenge, req.Limit, req.TimeoutSeconds)
	if err != nil {
		return h.fail(err)
	}
	h.logger.Debug("[%s] created key after %ds", h.id, req.TimeoutSeconds)
	return protocol.NewKey(key.String())
}

func (h *protocolHandler) handleVerify(msg protocol.Message) protocol.Message {
	req, err := protocol.ParseVerify(msg)
	if err != nil {
		return h.fail(err)
	}
	key, err := hashcash.DecodeKey(req.Key)
	if err != nil {
		return h.fail(fmt.Errorf("key: %w", err))
	}
	challenge, err := hashcash.DecodeChallenge(req.Challenge)
	if err != nil {
		return h.fail(fmt.Errorf("challenge: %w", err))
	}

	bits, err := h.service.Verify(key, challenge)
	if err != nil {
		return h.fail(err)
	}
	return protocol.NewBits(bits)
}

func (h *protocolHandler) fail(err error) protocol.Message {
	h.metrics.IncFailedRequests()
	h.logger.Error("[%s] request failed: %v", h.id, err)
	return protocol.NewError(err.Error())
}
