package main

import (
	"fmt"
	"log/slog"
	"os"

	"slackpost/clients"
	"slackpost/core"
	"slackpost/core/log"
	"slackpost/services"
	"slackpost/usecases"

	"github.com/charmbracelet/lipgloss"
	"github.com/jessevdk/go-flags"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

type Options struct {
	Verbose bool `long:"verbose" short:"v" description:"Enable info level logging"`
}

type PostCommand struct {
	Type    string `long:"type" description:"Community type, any prefix of \"channels\" or \"groups\""`
	Name    string `long:"name" description:"Exact display name of the destination"`
	Token   string `long:"token" description:"Slack API token"`
	Message string `long:"message" description:"Message text to post"`
}

func (c *PostCommand) Execute(args []string) error {
	api := clients.NewSlackClient(c.Token)
	resolver := services.NewResolverService(api)
	useCase := usecases.NewPostUseCase(resolver, api)

	result, err := useCase.Run(usecases.PostParams{
		Type:    c.Type,
		Name:    c.Name,
		Token:   c.Token,
		Message: c.Message,
	})
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Message posted to %s", result.Destination.Label())))
	return nil
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)

	if _, err := parser.AddCommand(
		"post",
		"Post a message to a channel or group",
		"Resolve a channel or group by its display name and post a message to it.",
		&PostCommand{},
	); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if opts.Verbose {
			log.SetLevel(slog.LevelInfo)
		}
		log.With("run", core.NewRunID())
		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
