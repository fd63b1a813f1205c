// Command tadoru checks a rendered static site for broken links.
package main

import (
	"fmt"
	"os"

	"github.com/ka2n/tadoru/cli"
	"github.com/morikuni/failure/v2"
)

func main() {
	if err := cli.Run(); err != nil {
		var userMessage string
		if fmsg := failure.MessageOf(err); fmsg != "" {
			userMessage = fmsg.String()
		} else {
			userMessage = err.Error()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", userMessage)

		// Issues found by a completed run are the expected failure signal;
		// anything else means the run could not be performed at all.
		if failure.Is(err, cli.IssuesFound) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
