package dashboard

import "github.com/pulseview/cli/pkg/api"

// Phase is the lookup-cycle state: idle → looking-up → posts-loading →
// ready, or error
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLookingUp
	PhasePostsLoading
	PhaseReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLookingUp:
		return "looking-up"
	case PhasePostsLoading:
		return "posts-loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// PanelState tracks the independent sentiment/AI/history panels
type PanelState int

const (
	PanelUnrequested PanelState = iota
	PanelLoading
	PanelReady
	PanelError
)

// Chat transcript roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one entry of the chat transcript
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	// Post texts sent to the analysis endpoints are capped at five.
	maxAnalysisPosts = 5

	defaultPageSize  = 5
	expandedPageSize = 100
)

// Snapshot is a copy of the view state safe to render without holding the
// view model's lock
type Snapshot struct {
	Phase        Phase
	ErrorMessage string

	Account *api.Account
	Posts   []api.Post
	Cursor  string
	ShowAll bool

	Sentiment      *api.SentimentResult
	SentimentState PanelState
	SentimentError string

	AIAnalysis *api.AIAnalysis
	AIState    PanelState

	Transcript  []ChatTurn
	ChatSending bool

	Chart        *DayChart
	HistoryState PanelState
}

// HasMore reports whether another page of posts can be fetched
func (s Snapshot) HasMore() bool {
	return s.Cursor != ""
}

// VisiblePosts returns the posts for the current display mode
func (s Snapshot) VisiblePosts() []api.Post {
	if s.ShowAll || len(s.Posts) <= defaultPageSize {
		return s.Posts
	}
	return s.Posts[:defaultPageSize]
}
