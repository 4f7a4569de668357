/*
Package runner implements the console loop that drives a phone state machine.

The runner is the only place that talks to a user. It prints the current
state and the numbered transitions, reads a selection, sanitizes it and hands
the index to the machine. Rejected or non-numeric selections are reported and
the prompt is repeated.

# Key Components

  - Runner: the loop. Ends on the terminal state, EOF, "exit"/"quit" or context cancellation.
  - IOHandler: decouples presentation from the loop.
  - TextHandler: interactive text, optionally rendered as Markdown.
  - JSONHandler: one JSON object per line for scripted use.

# Usage

	phone, _ := offhook.New()
	r := runner.New(
		runner.WithInput(os.Stdin),
		runner.WithOutput(os.Stdout),
	)

	if err := r.Run(ctx, phone); err != nil {
		log.Fatal(err)
	}
*/
package runner
