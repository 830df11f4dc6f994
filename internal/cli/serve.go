package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hashcash/internal/client"
	"hashcash/internal/ratelimit"
	"hashcash/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve CREATE and VERIFY requests over TCP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ipControl := ratelimit.NewIPControl(a.cfg)
			defer ipControl.Stop()

			srv := server.NewServer(a.cfg, a.miner(), a.metrics, ipControl, a.logger)
			if err := srv.Start(cmd.Context()); err != nil {
				return err
			}
			a.logger.Info("Stats: %v", a.metrics.GetStats())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&a.cfg.ListenAddr, "addr", a.cfg.ListenAddr, "listen address")
	flags.IntVar(&a.cfg.MaxConnections, "max-connections", a.cfg.MaxConnections, "maximum concurrent connections")
	flags.IntVar(&a.cfg.MaxSearchTimeout, "max-search-timeout", a.cfg.MaxSearchTimeout, "largest timeoutSeconds a CREATE may request")
	flags.DurationVar(&a.cfg.ReadTimeout, "read-timeout", a.cfg.ReadTimeout, "idle time allowed before the next request")
	flags.DurationVar(&a.cfg.WriteTimeout, "write-timeout", a.cfg.WriteTimeout, "time allowed to write a response")
	flags.DurationVar(&a.cfg.ShutdownTimeout, "shutdown-timeout", a.cfg.ShutdownTimeout, "time to wait for open connections on shutdown")
	flags.Float64Var(&a.cfg.RequestsPerMinute, "rate", a.cfg.RequestsPerMinute, "connections per minute allowed per IP")
	flags.IntVar(&a.cfg.Burst, "burst", a.cfg.Burst, "per-IP burst size")
	flags.IntVar(&a.cfg.BlacklistThreshold, "blacklist-threshold", a.cfg.BlacklistThreshold, "denied attempts before an IP is blacklisted")
	flags.DurationVar(&a.cfg.BlacklistDuration, "blacklist-duration", a.cfg.BlacklistDuration, "how long a blacklisted IP is refused")
	return cmd
}

func newRemoteCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Run hashcash1 operations on a server started with serve",
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfg.ListenAddr, "addr", a.cfg.ListenAddr, "server address")
	flags.DurationVar(&a.cfg.DialTimeout, "dial-timeout", a.cfg.DialTimeout, "connect and response timeout, not counting the search")

	create := &cobra.Command{
		Use:   "create <challengeHex> <limit> <timeoutSeconds>",
		Short: "Ask the server for a key",
		Long:  "Ask the server for a key.\n" + flagsFirstNote,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseCreateArgs(args)
			if err != nil {
				return err
			}
			c := client.NewClient(a.cfg.ListenAddr, a.cfg.DialTimeout)
			key, err := c.Create(req.challenge, req.limit, req.timeoutSeconds)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key.String())
			return err
		},
	}
	create.Flags().SetInterspersed(false)

	cmd.AddCommand(
		create,
		&cobra.Command{
			Use:   "verify <keyHex> <challengeHex>",
			Short: "Ask the server for a key's score",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, challenge, err := parseVerifyArgs(args)
				if err != nil {
					return err
				}
				c := client.NewClient(a.cfg.ListenAddr, a.cfg.DialTimeout)
				bits, err := c.Verify(key, challenge)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), bits)
				return err
			},
		},
	)
	return cmd
}
