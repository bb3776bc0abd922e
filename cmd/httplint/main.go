package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ava12/httplint/internal/cli"
	"github.com/ava12/httplint/internal/logging"
)

func main() {
	logging.ConfigureRuntime()

	err := cli.NewRootCommand().Execute()
	var exitErr *cli.ExitError
	if err != nil && !(errors.As(err, &exitErr) && exitErr.Code == cli.ExitFailure) {
		log.Error().Err(err).Msg("httplint failed")
	}
	os.Exit(cli.GetExitCode(err))
}
