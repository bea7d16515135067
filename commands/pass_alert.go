package commands

type PassAlertCommand struct {
	Check   CheckCommand   `command:"check" description:"Evaluate the strength of a password"`
	Audit   AuditCommand   `command:"audit" description:"Report weak passwords in a list, one per line"`
	History HistoryCommand `command:"history" description:"Show or clear recent evaluations"`
	Serve   ServeCommand   `command:"serve" description:"Run the HTTP API used by the web frontend"`
	Version VersionCommand `command:"version" description:"Displays pass-alert version" alias:"V"`
}

var PassAlert PassAlertCommand
