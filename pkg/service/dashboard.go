package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/pulseview/cli/pkg/api"
	"github.com/pulseview/cli/pkg/client"
	"github.com/pulseview/cli/pkg/config"
	"github.com/pulseview/cli/pkg/dashboard"
	"github.com/pulseview/cli/pkg/errors"
	"github.com/pulseview/cli/pkg/formatter"
	"github.com/pulseview/cli/pkg/prompter"
)

// DashboardService drives one dashboard session: it owns a view model for
// the lifetime of the command and renders its state after each operation
type DashboardService struct {
	vm *dashboard.ViewModel
}

// NewDashboardService creates a dashboard service over the REST backend
func NewDashboardService() *DashboardService {
	client.Init()
	delay := time.Duration(config.GetInt("api.lookup_delay_ms")) * time.Millisecond
	return &DashboardService{
		vm: dashboard.New(dashboard.NewRESTBackend(), delay),
	}
}

// Lookup loads an account and its first page of posts and renders the
// profile, post list, and engagement summary
func (s *DashboardService) Lookup(handle string, showAll bool) error {
	snap := s.vm.Snapshot()
	if showAll && !snap.ShowAll {
		// No account is loaded yet, so this only flips the display mode.
		_ = s.vm.ToggleShowAll()
	}

	formatter.PrintInfo("Looking up @%s...", strings.TrimPrefix(handle, "@"))

	err := s.vm.LookupAccount(handle)
	snap = s.vm.Snapshot()

	if snap.ErrorMessage != "" {
		formatter.PrintError("%s", snap.ErrorMessage)
	}
	if snap.Account == nil {
		return err
	}

	renderAccount(snap.Account)
	renderPosts(snap)
	renderSummary(snap.Posts)
	return err
}

// Posts loads an account and renders only its post list and engagement
// summary, without the profile card
func (s *DashboardService) Posts(handle string, showAll bool) error {
	if showAll && !s.vm.Snapshot().ShowAll {
		_ = s.vm.ToggleShowAll()
	}

	err := s.vm.LookupAccount(handle)
	snap := s.vm.Snapshot()

	if snap.ErrorMessage != "" {
		formatter.PrintError("%s", snap.ErrorMessage)
	}
	if snap.Account == nil {
		return err
	}

	renderPosts(snap)
	renderSummary(snap.Posts)
	return err
}

// LoadMore fetches and renders the next page of posts
func (s *DashboardService) LoadMore() error {
	snap := s.vm.Snapshot()
	if !snap.HasMore() {
		formatter.PrintInfo("No more posts to load")
		return nil
	}

	if err := s.vm.LoadMore(); err != nil {
		formatter.PrintError("%s", s.vm.Snapshot().ErrorMessage)
		return err
	}

	renderPosts(s.vm.Snapshot())
	return nil
}

// ToggleShowAll switches between the 5-post and 100-post display modes
func (s *DashboardService) ToggleShowAll() error {
	if err := s.vm.ToggleShowAll(); err != nil {
		formatter.PrintError("%s", s.vm.Snapshot().ErrorMessage)
		return err
	}

	snap := s.vm.Snapshot()
	if snap.ShowAll {
		formatter.PrintInfo("Showing up to 100 posts")
	} else {
		formatter.PrintInfo("Showing 5 posts")
	}
	renderPosts(snap)
	return nil
}

// AnalyzeSentiment runs sentiment scoring over the loaded posts
func (s *DashboardService) AnalyzeSentiment() error {
	snap := s.vm.Snapshot()
	if len(snap.Posts) == 0 {
		formatter.PrintInfo("No posts to analyze")
		return nil
	}

	formatter.PrintInfo("Analyzing sentiment...")
	if err := s.vm.AnalyzeSentiment(); err != nil {
		formatter.PrintError("Sentiment analysis failed: %s", s.vm.Snapshot().SentimentError)
		return err
	}

	renderSentiment(s.vm.Snapshot().Sentiment)
	return nil
}

// AnalyzeWithAI runs the narrative analysis over the loaded posts
func (s *DashboardService) AnalyzeWithAI() error {
	snap := s.vm.Snapshot()
	if len(snap.Posts) == 0 {
		formatter.PrintInfo("No posts to analyze")
		return nil
	}

	formatter.PrintInfo("Requesting AI analysis...")
	_ = s.vm.AnalyzeWithAI()

	// Failures arrive as an error-flagged result and render inline.
	if analysis := s.vm.Snapshot().AIAnalysis; analysis != nil {
		renderAI(analysis)
	}
	return nil
}

// ShowHistory fetches and renders the 7-day engagement chart
func (s *DashboardService) ShowHistory() error {
	snap := s.vm.Snapshot()
	if len(snap.Posts) == 0 {
		formatter.PrintInfo("No posts to chart")
		return nil
	}

	formatter.PrintInfo("Fetching historical metrics...")
	s.vm.FetchHistoricalMetrics()

	snap = s.vm.Snapshot()
	if snap.Chart == nil {
		// Non-essential panel: a failed or empty series is not an error.
		formatter.PrintInfo("No chartable data for these posts")
		return nil
	}

	renderChart(snap.Chart)
	return nil
}

// SendChatMessage sends one chat turn and renders the reply
func (s *DashboardService) SendChatMessage(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	before := len(s.vm.Snapshot().Transcript)
	if err := s.vm.SendChatMessage(text); err != nil {
		return err
	}

	snap := s.vm.Snapshot()
	renderTranscript(snap.Transcript[before:])
	return nil
}

// ChatLoop runs an interactive chat over the loaded post set
func (s *DashboardService) ChatLoop() error {
	if !prompter.IsInteractive() {
		formatter.PrintInfo("Chat needs an interactive terminal; use 'chat <message>' in a session instead")
		return nil
	}

	snap := s.vm.Snapshot()
	if len(snap.Posts) == 0 {
		formatter.PrintInfo("No posts loaded; look up an account first")
		return nil
	}

	formatter.PrintInfo("Chatting about @%s's posts (empty line to stop)", snap.Account.Username)

	for {
		text, err := prompter.PromptString("> ")
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return nil
		}
		if err := s.SendChatMessage(text); err != nil {
			return err
		}
	}
}

// Health reports backend reachability and whether the sentiment model has
// finished loading
func (s *DashboardService) Health() error {
	health, err := api.CheckHealth()
	if err != nil {
		formatter.PrintError("Backend unreachable: %v", err)
		return err
	}

	if health.Status == "ok" {
		formatter.PrintSuccess("Backend is up")
	} else {
		formatter.PrintWarning("Backend reports status: %s", health.Status)
	}
	if health.ModelLoaded {
		formatter.PrintInfo("Sentiment model loaded")
	} else {
		formatter.PrintWarning("Sentiment model still loading")
	}
	return nil
}

// RunSession runs the interactive dashboard REPL
func (s *DashboardService) RunSession(handle string) error {
	if !prompter.IsInteractive() {
		return errors.ValidationError("session", "the dashboard needs an interactive terminal")
	}

	if handle == "" {
		var err error
		handle, err = prompter.PromptString("Account handle: ")
		if err != nil {
			return err
		}
	}

	if err := s.Lookup(handle, false); err != nil {
		// The banner was already rendered; the session stays open so the
		// user can retry with another handle.
		if s.vm.Snapshot().Account == nil {
			s.vm.DismissError()
		}
	}

	fmt.Printf("\n")
	formatter.PrintInfo("Commands: lookup <handle>, more, all, summary, sentiment, ai, chat <msg>, history, health, help, quit")

	for {
		input, err := prompter.PromptString("dashboard> ")
		if err != nil {
			return err
		}

		command, arg := splitCommand(input)

		switch command {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		case "help":
			formatter.PrintInfo("Commands: lookup <handle>, more, all, summary, sentiment, ai, chat <msg>, history, health, help, quit")
		case "lookup":
			if arg == "" {
				formatter.PrintWarning("Usage: lookup <handle>")
				continue
			}
			_ = s.Lookup(arg, s.vm.Snapshot().ShowAll)
		case "more":
			_ = s.LoadMore()
		case "all":
			_ = s.ToggleShowAll()
		case "summary":
			renderSummary(s.vm.Snapshot().Posts)
		case "sentiment":
			_ = s.AnalyzeSentiment()
		case "ai":
			_ = s.AnalyzeWithAI()
		case "chat":
			if arg == "" {
				_ = s.ChatLoop()
			} else {
				_ = s.SendChatMessage(arg)
			}
		case "history":
			_ = s.ShowHistory()
		case "health":
			_ = s.Health()
		default:
			formatter.PrintWarning("Unknown command: %s (try 'help')", command)
		}
	}
}

func splitCommand(input string) (string, string) {
	input = strings.TrimSpace(input)
	parts := strings.SplitN(input, " ", 2)
	command := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return command, arg
}
