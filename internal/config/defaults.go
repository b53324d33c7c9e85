package config

import "time"

const (
	DefaultHTTPAddress     = "0.0.0.0:6379"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultHomeDir     = "/home/mailspring"
	DefaultAppName     = "Mailspring"
	DefaultVersion     = "1.16.0"
	DefaultServiceName = "mailspring-api"

	DefaultDisplay         = ":99"
	DefaultTool            = "xdotool"
	DefaultShell           = "sh"
	DefaultKeyboardTimeout = 15 * time.Second

	DefaultDesktopURL   = "http://localhost:6080/vnc.html?autoconnect=true"
	DefaultPollInterval = 30 * time.Second
)

// Defaults returns the configuration used for every field no other source
// sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Mailspring: Mailspring{
			HomeDir:     DefaultHomeDir,
			AppName:     DefaultAppName,
			Version:     DefaultVersion,
			ServiceName: DefaultServiceName,
		},
		Keyboard: Keyboard{
			Display: DefaultDisplay,
			Tool:    DefaultTool,
			Shell:   DefaultShell,
			Timeout: DefaultKeyboardTimeout,
		},
		Dashboard: Dashboard{
			DesktopURL:   DefaultDesktopURL,
			PollInterval: DefaultPollInterval,
		},
	}
}
