package config

func NewLoggerForTest(level, format, output, debug string) *Logger {
	return &Logger{level: level, format: format, output: output, debug: debug}
}

func NewSlackForTest(botToken, channel, errorReaction, apiURL string) *Slack {
	return &Slack{
		botToken:      botToken,
		channel:       channel,
		errorReaction: errorReaction,
		apiURL:        apiURL,
	}
}

func NewGitHubForTest(token string, appID, installationID int, privateKey, apiURL string) *GitHub {
	return &GitHub{
		token:          token,
		appID:          appID,
		installationID: installationID,
		privateKey:     privateKey,
		apiURL:         apiURL,
	}
}

func NewStepForTest(threadTS, status, conclusion string) *Step {
	return &Step{threadTS: threadTS, status: status, conclusion: conclusion}
}

func NewSentryForTest(dsn, env string) *Sentry {
	return &Sentry{dsn: dsn, env: env}
}
