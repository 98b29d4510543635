package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reelhouse/internal/config"
	"reelhouse/internal/logging"
	"reelhouse/internal/session"
)

type globalFlags struct {
	config string
	json   bool
	user   string
	admin  bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.config)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logging.NewComponentLogger(logger, "cli")
	})
	return c.logger
}

func (c *commandContext) jsonOutput() bool {
	return c.flags.json
}

func (c *commandContext) identity() session.Identity {
	if c.flags.admin {
		return session.AdminIdentity()
	}
	return session.UserIdentity(strings.TrimSpace(c.flags.user))
}

// withSession runs fn against a freshly loaded library. The library is saved
// only when save is true and fn succeeds.
func (c *commandContext) withSession(cmd *cobra.Command, save bool, fn func(*session.Session) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger := c.ensureLogger()
	sess, err := session.Open(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	logger = sess.Logger()
	logger.Debug("running command",
		logging.String("command", cmd.CommandPath()),
		logging.String(logging.FieldUsername, c.identity().String()),
	)

	if err := fn(sess); err != nil {
		_ = sess.Discard()
		return err
	}
	if !save {
		return sess.Discard()
	}
	if err := sess.Close(); err != nil {
		return fmt.Errorf("save library: %w", err)
	}
	return nil
}

func (c *commandContext) asUser(cmd *cobra.Command, save bool, fn func(*session.Session, string) error) error {
	id := c.identity()
	if err := id.RequireUser(); err != nil {
		return fmt.Errorf("%w (pass --user NAME)", err)
	}
	return c.withSession(cmd, save, func(sess *session.Session) error {
		if _, err := sess.Library().Accounts().Get(id.Username); err != nil {
			return err
		}
		return fn(sess, id.Username)
	})
}

func (c *commandContext) asAdmin(cmd *cobra.Command, save bool, fn func(*session.Session) error) error {
	if err := c.identity().RequireAdmin(); err != nil {
		return fmt.Errorf("%w (pass --admin)", err)
	}
	return c.withSession(cmd, save, fn)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
