// Command formctl submits contact, quiz or newsletter forms to a running
// JetLab backend from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go-jetlab-backend/pkg/client"
)

// Exit codes follow sysexits conventions for transient vs usage failures.
const (
	exitOK          = 0
	exitUsage       = 64
	exitUnavailable = 69
)

func main() {
	var (
		server      = flag.String("server", "http://localhost:5000", "backend base URL")
		form        = flag.String("form", "contact", "form type: contact, quiz or newsletter")
		timeout     = flag.Duration("timeout", client.DefaultTimeout, "request timeout")
		name        = flag.String("name", "", "submitter name")
		emailAddr   = flag.String("email", "", "submitter email")
		phone       = flag.String("phone", "", "submitter phone")
		service     = flag.String("service", "", "requested service")
		message     = flag.String("message", "", "free-form message (contact)")
		company     = flag.String("company", "", "company name (quiz)")
		budget      = flag.String("budget", "", "budget label (quiz)")
		timeline    = flag.String("timeline", "", "timeline label (quiz)")
		goals       = flag.String("goals", "", "comma-separated goals (quiz)")
		description = flag.String("description", "", "project description (quiz)")
	)
	flag.Parse()

	c := client.New(*server, client.WithTimeout(*timeout))
	ctx := context.Background()

	var result *client.Result
	switch *form {
	case "contact":
		result = c.SubmitContact(ctx, client.ContactForm{
			Name:    *name,
			Email:   *emailAddr,
			Phone:   *phone,
			Service: *service,
			Message: *message,
		})
	case "quiz":
		result = c.SubmitQuiz(ctx, client.QuizForm{
			Name:        *name,
			Email:       *emailAddr,
			Phone:       *phone,
			Company:     *company,
			Service:     *service,
			Budget:      *budget,
			Timeline:    *timeline,
			Goals:       splitGoals(*goals),
			Description: *description,
		})
	case "newsletter":
		result = c.SubscribeNewsletter(ctx, *emailAddr)
	default:
		fmt.Fprintf(os.Stderr, "unknown form type %q (want contact, quiz or newsletter)\n", *form)
		os.Exit(exitUsage)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))

	if !result.Success {
		os.Exit(exitUnavailable)
	}
	os.Exit(exitOK)
}

func splitGoals(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	goals := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			goals = append(goals, p)
		}
	}
	return goals
}
