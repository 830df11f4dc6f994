// Package cli wires the hashcash commands:
//
//	hashcash hashcash1 create <challengeHex> <limit> <timeoutSeconds>
//	hashcash hashcash1 verify <keyHex> <challengeHex>
//	hashcash hashcash1 sample <timeoutSeconds>
//	hashcash serve
//	hashcash remote create|verify ...
//
// Every failure is returned from Execute; the caller maps it to exit code 1.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hashcash/internal/config"
	"hashcash/internal/hashcash"
	"hashcash/internal/logger"
	"hashcash/internal/metrics"
)

// app carries what the commands share after flag parsing.
type app struct {
	cfg     *config.Config
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func (a *app) miner() *hashcash.Miner {
	return hashcash.NewMiner(
		hashcash.WithAlgorithm(hashcash.Algorithm(a.cfg.Algorithm)),
		hashcash.WithLogger(a.logger),
		hashcash.WithStats(a.metrics),
	)
}

// NewRootCommand builds the command tree with default configuration.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{cfg: config.NewConfig(), metrics: metrics.NewMetrics()})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "hashcash",
		Short:         "Create and verify hashcash1 proofs of work",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			a.logger = logger.NewLoggerTo(cmd.ErrOrStderr(), a.cfg.Verbose)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Algorithm, "hash", a.cfg.Algorithm, "hash algorithm: sha512 or sha3-512")
	flags.BoolVarP(&a.cfg.Verbose, "verbose", "v", a.cfg.Verbose, "log search details to stderr")

	root.AddCommand(
		newHashcash1Command(a),
		newServeCommand(a),
		newRemoteCommand(a),
	)
	return root
}

func newHashcash1Command(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashcash1",
		Short: "Local hashcash1 operations",
	}
	cmd.AddCommand(
		newCreateCommand(a),
		newVerifyCommand(a),
		newSampleCommand(a),
	)
	return cmd
}

func newCreateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <challengeHex> <limit> <timeoutSeconds>",
		Short: "Search for the best key within the time budget and print it",
		Long: "Search for the best key within the time budget and print it as hex.\n" +
			"limit is accepted for compatibility and does not change the search.\n" +
			flagsFirstNote,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseCreateArgs(args)
			if err != nil {
				return err
			}

			key, err := a.miner().Create(req.challenge, req.limit, req.timeoutSeconds)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key.String())
			return err
		},
	}
	// limit may be negative; stop flag parsing at the first argument
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newVerifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <keyHex> <challengeHex>",
		Short: "Print the number of leading zero bits of a key's digest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, challenge, err := parseVerifyArgs(args)
			if err != nil {
				return err
			}

			bits, err := a.miner().Verify(key, challenge)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bits)
			return err
		},
	}
}

func newSampleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sample <timeoutSeconds>",
		Short: "Mine a random challenge and print the score reached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, err := parseTimeout(args[0])
			if err != nil {
				return err
			}

			bits, err := hashcash.Sample(a.miner(), timeout)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bits)
			return err
		},
	}
}

// flagsFirstNote is shared by the create commands, which stop flag parsing at
// the first argument so a negative limit is not read as a flag.
const flagsFirstNote = "Flags must come before the arguments, or use -- to end flags:\n" +
	"  hashcash --hash sha3-512 hashcash1 create <challengeHex> <limit> <timeoutSeconds>\n" +
	"  hashcash hashcash1 create -- <challengeHex> -1 <timeoutSeconds>"

type createArgs struct {
	challenge      hashcash.Challenge
	limit          int
	timeoutSeconds int
}

func parseCreateArgs(args []string) (createArgs, error) {
	challenge, err := hashcash.DecodeChallenge(args[0])
	if err != nil {
		return createArgs{}, fmt.Errorf("challenge: %w", err)
	}
	limit, err := strconv.Atoi(args[1])
	if err != nil {
		return createArgs{}, fmt.Errorf("invalid limit: %w", err)
	}
	timeout, err := parseTimeout(args[2])
	if err != nil {
		return createArgs{}, err
	}
	return createArgs{challenge: challenge, limit: limit, timeoutSeconds: timeout}, nil
}

func parseVerifyArgs(args []string) (hashcash.Key, hashcash.Challenge, error) {
	key, err := hashcash.DecodeKey(args[0])
	if err != nil {
		return hashcash.Key{}, hashcash.Challenge{}, fmt.Errorf("key: %w", err)
	}
	challenge, err := hashcash.DecodeChallenge(args[1])
	if err != nil {
		return hashcash.Key{}, hashcash.Challenge{}, fmt.Errorf("challenge: %w", err)
	}
	return key, challenge, nil
}

func parseTimeout(s string) (int, error) {
	timeout, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout: %w", err)
	}
	if timeout < 0 {
		return 0, fmt.Errorf("timeout must not be negative")
	}
	return timeout, nil
}
