package client

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"hashcash/internal/hashcash"
	"hashcash/internal/protocol"
)

// ErrRemote is returned when the server answers ERROR.
var ErrRemote = errors.New("server error")

// Client sends one request per connection to a hashcash server.
type Client struct {
	address string
	timeout time.Duration
}

func NewClient(address string, timeout time.Duration) *Client {
	return &Client{
		address: address,
		timeout: timeout,
	}
}

// Create asks the server to search for timeoutSeconds. The connection
// deadline is extended by the search budget.
func (c *Client) Create(challenge hashcash.Challenge, limit, timeoutSeconds int) (hashcash.Key, error) {
	budget := c.timeout + time.Duration(timeoutSeconds)*time.Second
	resp, err := c.do(protocol.NewCreate(challenge.String(), limit, timeoutSeconds), budget)
	if err != nil {
		return hashcash.Key{}, err
	}
	if resp.Command != protocol.CmdKey || len(resp.Args) != 1 {
		return hashcash.Key{}, fmt.Errorf("unexpected response %q", resp.String())
	}
	return hashcash.DecodeKey(resp.Args[0])
}

// Verify asks the server for the score of key against challenge.
func (c *Client) Verify(key hashcash.Key, challenge hashcash.Challenge) (int, error) {
	resp, err := c.do(protocol.NewVerify(key.String(), challenge.String()), c.timeout)
	if err != nil {
		return 0, err
	}
	if resp.Command != protocol.CmdBits || len(resp.Args) != 1 {
		return 0, fmt.Errorf("unexpected response %q", resp.String())
	}
	bits, err := strconv.Atoi(resp.Args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid bit count: %w", err)
	}
	return bits, nil
}

func (c *Client) do(req protocol.Message, deadline time.Duration) (protocol.Message, error) {
	conn, err := net.DialTimeout("tcp", c.address, c.timeout)
	if err != nil {
		return protocol.Message{}, err
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(deadline))

	if _, err := fmt.Fprintf(conn, "%s\n", req.String()); err != nil {
		return protocol.Message{}, fmt.Errorf("failed to send request: %w", err)
	}

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return protocol.Message{}, fmt.Errorf("failed to read response: %w", err)
	}

	resp, err := protocol.Parse(line)
	if err != nil {
		return protocol.Message{}, err
	}
	if resp.Command == protocol.CmdError {
		return protocol.Message{}, fmt.Errorf("%w: %s", ErrRemote, strings.Join(resp.Args, " "))
	}
	return resp, nil
}
