package config

import (
	"log/slog"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Step holds the action inputs of one workflow step
type Step struct {
	threadTS   string
	status     string
	conclusion string
}

func (x *Step) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "thread-ts",
			Usage:       "Summary message timestamp returned by the first step",
			Category:    "Step",
			Destination: &x.threadTS,
			Sources:     cli.EnvVars("INPUT_THREAD_TS"),
		},
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Job status [success|failure|cancelled], required with --thread-ts",
			Category:    "Step",
			Destination: &x.status,
			Sources:     cli.EnvVars("INPUT_STATUS"),
		},
		&cli.StringFlag{
			Name:        "conclusion",
			Usage:       "Update the summary message after a successful stage [true|false]",
			Category:    "Step",
			Destination: &x.conclusion,
			Sources:     cli.EnvVars("INPUT_CONCLUSION"),
		},
	}
}

func (x Step) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("thread_ts", x.threadTS),
		slog.String("status", x.status),
		slog.String("conclusion", x.conclusion),
	)
}

// Input converts the step inputs to a usecase input. The runner passes an
// empty string for an omitted conclusion.
func (x *Step) Input() (usecase.NotifyInput, error) {
	var conclusion bool
	if x.conclusion != "" {
		v, err := strconv.ParseBool(x.conclusion)
		if err != nil {
			return usecase.NotifyInput{}, goerr.Wrap(err, "invalid conclusion input", goerr.V(EnvKey, "INPUT_CONCLUSION"), goerr.V("value", x.conclusion))
		}
		conclusion = v
	}

	return usecase.NotifyInput{
		ThreadTS:   x.threadTS,
		Status:     x.status,
		Conclusion: conclusion,
	}, nil
}
