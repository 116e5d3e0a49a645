package client

import (
	"encoding/json"
	"sync"

	"github.com/devlink/server/internal/models"
)

// ActionType identifies one state transition.
type ActionType string

const (
	// auth slice
	RegisterSuccess ActionType = "REGISTER_SUCCESS"
	RegisterFail    ActionType = "REGISTER_FAIL"
	LoginSuccess    ActionType = "LOGIN_SUCCESS"
	LoginFail       ActionType = "LOGIN_FAIL"
	UserLoaded      ActionType = "USER_LOADED"
	AuthError       ActionType = "AUTH_ERROR"
	Logout          ActionType = "LOGOUT"
	AccountDeleted  ActionType = "ACCOUNT_DELETED"

	// profile slice
	GetProfile    ActionType = "GET_PROFILE"
	GetProfiles   ActionType = "GET_PROFILES"
	GetRepos      ActionType = "GET_REPOS"
	UpdateProfile ActionType = "UPDATE_PROFILE"
	ProfileError  ActionType = "PROFILE_ERROR"
	ClearProfile  ActionType = "CLEAR_PROFILE"

	// post slice
	GetPosts      ActionType = "GET_POSTS"
	GetPost       ActionType = "GET_POST"
	AddPost       ActionType = "ADD_POST"
	DeletePost    ActionType = "DELETE_POST"
	UpdateLikes   ActionType = "UPDATE_LIKES"
	AddComment    ActionType = "ADD_COMMENT"
	RemoveComment ActionType = "REMOVE_COMMENT"
	PostError     ActionType = "POST_ERROR"

	// alerts
	SetAlert    ActionType = "SET_ALERT"
	RemoveAlert ActionType = "REMOVE_ALERT"
)

// Action is one typed store mutation with its server-confirmed payload.
type Action struct {
	Type    ActionType
	Payload any
}

// RequestError is a failed mutation normalized for the store.
type RequestError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Alert is a transient user-visible notification.
type Alert struct {
	ID        string `json:"id"`
	Msg       string `json:"msg"`
	AlertType string `json:"alertType"`
}

// LikesUpdate carries the confirmed like list for one post.
type LikesUpdate struct {
	PostID string
	Likes  []models.Like
}

type AuthState struct {
	Token           string
	IsAuthenticated bool
	Loading         bool
	User            *models.User
}

type ProfileState struct {
	Profile  *models.Profile
	Profiles []*models.Profile
	Repos    json.RawMessage
	Loading  bool
	Error    *RequestError
}

type PostState struct {
	Posts   []*models.Post
	Post    *models.Post
	Loading bool
	Error   *RequestError
}

// State is the full client-visible application state. Slices are held
// by pointer so an untouched slice survives a dispatch as the same
// reference, which is what downstream shallow-equality checks rely on.
type State struct {
	Auth    *AuthState
	Profile *ProfileState
	Post    *PostState
	Alerts  []Alert
}

func initialState() *State {
	return &State{
		Auth:    &AuthState{Loading: true},
		Profile: &ProfileState{Loading: true},
		Post:    &PostState{Loading: true},
		Alerts:  nil,
	}
}

// Store is the single source of client truth: a current *State plus a
// pure root reducer. State only ever changes through Dispatch, and only
// with server-confirmed payloads; nothing is applied optimistically.
type Store struct {
	mu     sync.RWMutex
	state  *State
	subs   map[int]func(*State)
	nextID int
}

func NewStore() *Store {
	return &Store{
		state: initialState(),
		subs:  make(map[int]func(*State)),
	}
}

// Dispatch runs the action through the reducer and notifies subscribers
// if anything changed.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	prev := s.state
	next := rootReducer(prev, action)
	s.state = next
	subs := make([]func(*State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if next != prev {
		for _, fn := range subs {
			fn(next)
		}
	}
}

// State returns the current state pointer. Treat it as immutable.
func (s *Store) State() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a listener for state changes and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func(*State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Process-wide store singleton. Constructed once at startup, torn down
// on exit; reducers themselves stay pure.
var (
	defaultMu    sync.Mutex
	defaultStore *Store
)

// Init constructs the process store. Safe to call more than once; only
// the first call after startup (or a Shutdown) builds it.
func Init() *Store {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultStore == nil {
		defaultStore = NewStore()
	}
	return defaultStore
}

// Default returns the process store, constructing it if needed.
func Default() *Store {
	return Init()
}

// Shutdown drops the process store so a fresh Init starts clean.
func Shutdown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultStore = nil
}
