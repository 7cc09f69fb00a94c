package main

import (
	"github.com/urfave/cli"
)

var (
	AppHelpTemplate = `NAME:
{{.Name}} - {{.Usage}}
USAGE:
{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}
{{if .Version}}
VERSION:
  {{.Version}}
  {{end}}{{if .Commands}}
COMMANDS:
{{range .Commands}}{{if not .HideHelp}}   {{join .Names ", "}}{{ "\t"}}{{.Usage}}{{ "\n" }}{{end}}{{end}}{{end}}{{if .VisibleFlags}}
GLOBAL OPTIONS:
{{range .VisibleFlags}}{{.}}
{{end}}{{end}}
CONFIG FILE OPTIONS:
 Config file options should use parameterName = parameterValue semantics.
 Each option should be specified in its own line. Lines starting with ; are ignored. Example:
    seederPort = 10234
    apiPort = 8081

 Available options:
    seederPort           Port to listen on (same as -p)
    testnetSeederPort    Port to listen on in testnet mode (same as -p)
    apiPort              HTTP/API port to listen on (same as -a)
    testnetApiPort       HTTP/API port to listen on in testnet mode (same as -a)
    apiAllowIp           Allow API connections from specified source (can be used multiple times)
    apiBind              Bind to given address to listen for API connections (can be used multiple times)
    addApiUser           Adds user:password that can access the API (can be used multiple times)
    externalIp           External IP address to use (same as -i)
    addPeer              Seed node to use (can be used multiple times)
    addTestnetPeer       Seed node to use in testnet mode (can be used multiple times)
    maxLogSize           Maximum log file size in MB (same as --maxLogSize)
    maxLogCount          Maximum number of log files (same as --maxLogCount)
    logVerbosity         Log verbosity (same as --logVerbosity)
    walletNotify         Execute command when a wallet transaction changes
{{if .Copyright }}
COPYRIGHT:
   {{.Copyright}}
{{end}}
`
)

// NewApp
func NewApp() *cli.App {
	app := cli.NewApp()
	app.CustomAppHelpTemplate = AppHelpTemplate
	app.Name = "IxianSeeder"
	app.HelpName = "IxianSeeder"
	app.Usage = "Starts a new instance of Ixian Seeder Node"
	app.Copyright = "Copyright The Ixian Platform Authors"

	return app
}
