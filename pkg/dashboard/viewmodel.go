package dashboard

import (
	"strings"
	"sync"
	"time"

	"github.com/pulseview/cli/pkg/api"
	"github.com/pulseview/cli/pkg/errors"
	"github.com/pulseview/cli/pkg/logger"
)

const genericErrorMessage = "Something went wrong talking to the backend. Please try again."
const backendOfflineMessage = "The analysis backend is not reachable."

// ViewModel owns the dashboard's state for one session and sequences the
// backend calls that mutate it. Operations block until their call completes;
// state is only ever updated atomically per completed call. In-flight calls
// cannot be cancelled, so a superseded request may still apply its result
// when it lands.
type ViewModel struct {
	mu      sync.Mutex
	backend Backend

	// Fixed pause between account lookup and the first post fetch; the
	// upstream platform API rate limits the two endpoints as a pair.
	lookupDelay time.Duration
	sleep       func(time.Duration)

	phase  Phase
	errMsg string

	account *api.Account
	posts   []api.Post
	cursor  string
	showAll bool

	sentiment      *api.SentimentResult
	sentimentState PanelState
	sentimentErr   string

	aiAnalysis *api.AIAnalysis
	aiState    PanelState

	transcript  []ChatTurn
	chatSending bool

	chart        *DayChart
	historyState PanelState
}

// New creates a view model over the given backend
func New(backend Backend, lookupDelay time.Duration) *ViewModel {
	return &ViewModel{
		backend:     backend,
		lookupDelay: lookupDelay,
		sleep:       time.Sleep,
	}
}

// Snapshot returns a copy of the current view state
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return Snapshot{
		Phase:          vm.phase,
		ErrorMessage:   vm.errMsg,
		Account:        vm.account,
		Posts:          append([]api.Post(nil), vm.posts...),
		Cursor:         vm.cursor,
		ShowAll:        vm.showAll,
		Sentiment:      vm.sentiment,
		SentimentState: vm.sentimentState,
		SentimentError: vm.sentimentErr,
		AIAnalysis:     vm.aiAnalysis,
		AIState:        vm.aiState,
		Transcript:     append([]ChatTurn(nil), vm.transcript...),
		ChatSending:    vm.chatSending,
		Chart:          vm.chart,
		HistoryState:   vm.historyState,
	}
}

// DismissError clears the global error banner
func (vm *ViewModel) DismissError() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.errMsg = ""
	if vm.phase == PhaseError {
		vm.phase = PhaseIdle
		if vm.account != nil {
			vm.phase = PhaseReady
		}
	}
}

// LookupAccount resolves a handle and loads the first page of posts.
// Analysis panels from the previous account are invalidated up front; on
// lookup failure the previously loaded account and posts stay untouched.
func (vm *ViewModel) LookupAccount(handle string) error {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return errors.ValidationError("handle", "cannot be empty")
	}

	vm.mu.Lock()
	vm.phase = PhaseLookingUp
	vm.errMsg = ""
	vm.sentiment = nil
	vm.sentimentState = PanelUnrequested
	vm.sentimentErr = ""
	vm.aiAnalysis = nil
	vm.aiState = PanelUnrequested
	vm.chart = nil
	vm.historyState = PanelUnrequested
	vm.mu.Unlock()

	account, err := vm.backend.LookupAccount(handle)
	if err != nil {
		vm.mu.Lock()
		vm.phase = PhaseError
		vm.errMsg = bannerMessage(err)
		vm.mu.Unlock()
		return err
	}

	vm.mu.Lock()
	vm.account = account
	vm.posts = nil
	vm.cursor = ""
	vm.phase = PhasePostsLoading
	vm.mu.Unlock()

	vm.sleep(vm.lookupDelay)

	// On failure the account is retained with an empty post list.
	return vm.FetchPosts("")
}

// FetchPosts loads a page of posts. An empty cursor replaces the list, a
// cursor appends to it; the stored next-page cursor is always replaced
// from the response, or cleared when pagination is exhausted.
func (vm *ViewModel) FetchPosts(cursor string) error {
	vm.mu.Lock()
	if vm.account == nil {
		vm.mu.Unlock()
		return errors.ValidationError("account", "no account loaded")
	}
	accountID := vm.account.ID
	maxResults := defaultPageSize
	if vm.showAll {
		maxResults = expandedPageSize
	}
	vm.phase = PhasePostsLoading
	vm.mu.Unlock()

	resp, err := vm.backend.GetPosts(accountID, api.PostsOptions{
		MaxResults:      maxResults,
		PaginationToken: cursor,
	})
	if err != nil {
		vm.mu.Lock()
		vm.phase = PhaseError
		vm.errMsg = bannerMessage(err)
		vm.mu.Unlock()
		return err
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	page := backfillMetrics(resp.Data)
	if cursor == "" {
		vm.posts = page
	} else {
		vm.posts = appendPosts(vm.posts, page)
	}

	vm.cursor = ""
	if resp.Meta != nil {
		vm.cursor = resp.Meta.NextToken
	}

	vm.phase = PhaseReady
	vm.errMsg = ""
	return nil
}

// ToggleShowAll switches between the 5-post and 100-post display modes.
// Entering the expanded mode with fewer than 100 posts loaded discards the
// list and cursor and refetches from scratch.
func (vm *ViewModel) ToggleShowAll() error {
	vm.mu.Lock()
	vm.showAll = !vm.showAll
	refetch := vm.showAll && vm.account != nil && len(vm.posts) < expandedPageSize
	if refetch {
		vm.posts = nil
		vm.cursor = ""
	}
	vm.mu.Unlock()

	if refetch {
		return vm.FetchPosts("")
	}
	return nil
}

// LoadMore fetches the next page; no-op without a cursor or account
func (vm *ViewModel) LoadMore() error {
	vm.mu.Lock()
	cursor := vm.cursor
	ok := vm.account != nil && cursor != ""
	vm.mu.Unlock()

	if !ok {
		return nil
	}
	return vm.FetchPosts(cursor)
}

// AnalyzeSentiment scores the first five loaded posts. No-op with nothing
// loaded; a failure flips the panel to error but keeps any previously
// computed result.
func (vm *ViewModel) AnalyzeSentiment() error {
	vm.mu.Lock()
	texts := analysisTexts(vm.posts)
	if len(texts) == 0 || vm.sentimentState == PanelLoading {
		vm.mu.Unlock()
		return nil
	}
	vm.sentimentState = PanelLoading
	vm.mu.Unlock()

	if !vm.backend.IsHealthy() {
		vm.mu.Lock()
		vm.sentimentState = PanelError
		vm.sentimentErr = backendOfflineMessage
		vm.mu.Unlock()
		return errors.NetworkError(backendOfflineMessage)
	}

	result, err := vm.backend.AnalyzeSentiment(texts)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err != nil {
		vm.sentimentState = PanelError
		vm.sentimentErr = bannerMessage(err)
		return err
	}
	vm.sentiment = result
	vm.sentimentState = PanelReady
	vm.sentimentErr = ""
	return nil
}

// AnalyzeWithAI requests the narrative analysis. Failures are stored as an
// error-flagged result so the panel renders them inline; the global banner
// is never involved.
func (vm *ViewModel) AnalyzeWithAI() error {
	vm.mu.Lock()
	texts := analysisTexts(vm.posts)
	if len(texts) == 0 || vm.aiState == PanelLoading {
		vm.mu.Unlock()
		return nil
	}
	vm.aiState = PanelLoading
	vm.mu.Unlock()

	if !vm.backend.IsHealthy() {
		vm.storeAIFailure(backendOfflineMessage)
		return nil
	}

	result, err := vm.backend.AnalyzeWithAI(texts)
	if err != nil {
		vm.storeAIFailure(bannerMessage(err))
		return nil
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.aiAnalysis = result
	vm.aiState = PanelReady
	return nil
}

func (vm *ViewModel) storeAIFailure(msg string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.aiAnalysis = &api.AIAnalysis{Error: msg}
	vm.aiState = PanelError
}

// SendChatMessage appends the user turn optimistically, sends the prior
// transcript plus up to five post texts, and appends the assistant's reply
// or an assistant turn carrying the error text. Blank input and overlapping
// sends are no-ops.
func (vm *ViewModel) SendChatMessage(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	vm.mu.Lock()
	if vm.chatSending {
		vm.mu.Unlock()
		return nil
	}
	vm.chatSending = true
	history := serializeTranscript(vm.transcript)
	texts := analysisTexts(vm.posts)
	vm.transcript = append(vm.transcript, ChatTurn{Role: RoleUser, Content: text})
	vm.mu.Unlock()

	var reply string
	if !vm.backend.IsHealthy() {
		reply = "The analysis backend is offline right now, so I can't answer that."
	} else if resp, err := vm.backend.Chat(texts, history, text); err != nil {
		reply = "Sorry, something went wrong: " + err.Error()
	} else {
		reply = resp.Response
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.transcript = append(vm.transcript, ChatTurn{Role: RoleAssistant, Content: reply})
	vm.chatSending = false
	return nil
}

// FetchHistoricalMetrics loads the 7-day engagement series for the chart.
// The chart is a secondary enrichment: failures are logged, never surfaced.
func (vm *ViewModel) FetchHistoricalMetrics() {
	vm.mu.Lock()
	if vm.account == nil || len(vm.posts) == 0 || vm.historyState == PanelLoading {
		vm.mu.Unlock()
		return
	}
	accountID := vm.account.ID
	ids := postIDs(vm.posts, maxAnalysisPosts)
	vm.historyState = PanelLoading
	vm.mu.Unlock()

	resp, err := vm.backend.GetHistoricalMetrics(accountID, ids, api.LastSevenDays())

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err != nil {
		logger.Warn("Historical metrics fetch failed", "err", err)
		vm.historyState = PanelError
		return
	}

	chart, err := GroupHistoricalByDay(flattenEntries(resp))
	if err != nil {
		logger.Debug("Historical metrics returned no chartable data")
		vm.chart = nil
		vm.historyState = PanelError
		return
	}

	vm.chart = chart
	vm.historyState = PanelReady
}

// CheckBackendHealth reports backend reachability, false on any failure
func (vm *ViewModel) CheckBackendHealth() bool {
	return vm.backend.IsHealthy()
}

// Helpers

// bannerMessage maps an error to the user-visible message: the distinct
// rate-limit wording, else the upstream detail, else a generic fallback
func bannerMessage(err error) string {
	if api.IsRateLimited(err) {
		return errors.RateLimitError().Message
	}
	if detail := api.Detail(err); detail != "" {
		return detail
	}
	return genericErrorMessage
}

// backfillMetrics gives posts without engagement counts zero placeholder
// metrics, marked synthetic so the UI can flag them
func backfillMetrics(posts []api.Post) []api.Post {
	out := make([]api.Post, len(posts))
	copy(out, posts)
	for i := range out {
		if out[i].PublicMetrics == nil {
			out[i].PublicMetrics = &api.PostMetrics{}
			out[i].Synthetic = true
		}
	}
	return out
}

// appendPosts appends only unseen posts, preserving the order of those
// already loaded
func appendPosts(existing, page []api.Post) []api.Post {
	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		seen[p.ID] = struct{}{}
	}
	for _, p := range page {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		existing = append(existing, p)
	}
	return existing
}

// analysisTexts returns the texts of the first five posts
func analysisTexts(posts []api.Post) []string {
	n := len(posts)
	if n > maxAnalysisPosts {
		n = maxAnalysisPosts
	}
	texts := make([]string, 0, n)
	for _, p := range posts[:n] {
		texts = append(texts, p.Text)
	}
	return texts
}

func postIDs(posts []api.Post, max int) []string {
	if len(posts) < max {
		max = len(posts)
	}
	ids := make([]string, 0, max)
	for _, p := range posts[:max] {
		ids = append(ids, p.ID)
	}
	return ids
}

// serializeTranscript renders prior turns as the alternating User:/AI:
// lines the chat endpoint expects
func serializeTranscript(transcript []ChatTurn) string {
	lines := make([]string, 0, len(transcript))
	for _, turn := range transcript {
		prefix := "User: "
		if turn.Role == RoleAssistant {
			prefix = "AI: "
		}
		lines = append(lines, prefix+turn.Content)
	}
	return strings.Join(lines, "\n")
}

func flattenEntries(resp *api.HistoricalResponse) []api.SeriesEntry {
	var entries []api.SeriesEntry
	for _, series := range resp.Data {
		entries = append(entries, series.Entries...)
	}
	return entries
}
