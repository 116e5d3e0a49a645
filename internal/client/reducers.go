package client

import (
	"encoding/json"

	"github.com/devlink/server/internal/models"
)

// Reducers are pure: no I/O, no clock, no mutation of the incoming
// state. An action a slice doesn't handle returns the slice pointer
// unchanged, and when no slice changes the root returns the identical
// *State, so subscribers can rely on pointer equality for change
// detection.

func rootReducer(state *State, action Action) *State {
	auth := authReducer(state.Auth, action)
	profile := profileReducer(state.Profile, action)
	post := postReducer(state.Post, action)
	alerts, alertsChanged := alertReducer(state.Alerts, action)

	if auth == state.Auth && profile == state.Profile && post == state.Post && !alertsChanged {
		return state
	}

	return &State{
		Auth:    auth,
		Profile: profile,
		Post:    post,
		Alerts:  alerts,
	}
}

func authReducer(state *AuthState, action Action) *AuthState {
	switch action.Type {
	case RegisterSuccess, LoginSuccess:
		token, _ := action.Payload.(string)
		next := *state
		next.Token = token
		next.IsAuthenticated = true
		next.Loading = false
		return &next
	case UserLoaded:
		user, _ := action.Payload.(*models.User)
		next := *state
		next.IsAuthenticated = true
		next.Loading = false
		next.User = user
		return &next
	case RegisterFail, LoginFail, AuthError, Logout, AccountDeleted:
		return &AuthState{Loading: false}
	default:
		return state
	}
}

func profileReducer(state *ProfileState, action Action) *ProfileState {
	switch action.Type {
	case GetProfile, UpdateProfile:
		profile, _ := action.Payload.(*models.Profile)
		next := *state
		next.Profile = profile
		next.Loading = false
		return &next
	case GetProfiles:
		profiles, _ := action.Payload.([]*models.Profile)
		next := *state
		next.Profiles = profiles
		next.Loading = false
		return &next
	case GetRepos:
		repos, _ := action.Payload.(json.RawMessage)
		next := *state
		next.Repos = repos
		next.Loading = false
		return &next
	case ProfileError:
		reqErr, _ := action.Payload.(*RequestError)
		next := *state
		next.Error = reqErr
		next.Profile = nil
		next.Loading = false
		return &next
	case ClearProfile, AccountDeleted:
		next := *state
		next.Profile = nil
		next.Repos = nil
		next.Loading = false
		return &next
	default:
		return state
	}
}

func postReducer(state *PostState, action Action) *PostState {
	switch action.Type {
	case GetPosts:
		posts, _ := action.Payload.([]*models.Post)
		next := *state
		next.Posts = posts
		next.Loading = false
		return &next
	case GetPost:
		post, _ := action.Payload.(*models.Post)
		next := *state
		next.Post = post
		next.Loading = false
		return &next
	case AddPost:
		post, _ := action.Payload.(*models.Post)
		next := *state
		next.Posts = append([]*models.Post{post}, state.Posts...)
		next.Loading = false
		return &next
	case DeletePost:
		postID, _ := action.Payload.(string)
		next := *state
		kept := make([]*models.Post, 0, len(state.Posts))
		for _, p := range state.Posts {
			if p.ID.Hex() != postID {
				kept = append(kept, p)
			}
		}
		next.Posts = kept
		next.Loading = false
		return &next
	case UpdateLikes:
		update, _ := action.Payload.(*LikesUpdate)
		if update == nil {
			return state
		}
		next := *state
		posts := make([]*models.Post, len(state.Posts))
		for i, p := range state.Posts {
			if p.ID.Hex() == update.PostID {
				liked := *p
				liked.Likes = update.Likes
				posts[i] = &liked
			} else {
				posts[i] = p
			}
		}
		next.Posts = posts
		next.Loading = false
		return &next
	case AddComment:
		comments, _ := action.Payload.([]models.Comment)
		if state.Post == nil {
			return state
		}
		next := *state
		post := *state.Post
		post.Comments = comments
		next.Post = &post
		next.Loading = false
		return &next
	case RemoveComment:
		commentID, _ := action.Payload.(string)
		if state.Post == nil {
			return state
		}
		next := *state
		post := *state.Post
		kept := make([]models.Comment, 0, len(post.Comments))
		for _, cm := range post.Comments {
			if cm.ID.Hex() != commentID {
				kept = append(kept, cm)
			}
		}
		post.Comments = kept
		next.Post = &post
		next.Loading = false
		return &next
	case PostError:
		reqErr, _ := action.Payload.(*RequestError)
		next := *state
		next.Error = reqErr
		next.Loading = false
		return &next
	default:
		return state
	}
}

func alertReducer(alerts []Alert, action Action) ([]Alert, bool) {
	switch action.Type {
	case SetAlert:
		alert, ok := action.Payload.(Alert)
		if !ok {
			return alerts, false
		}
		return append(append([]Alert{}, alerts...), alert), true
	case RemoveAlert:
		id, _ := action.Payload.(string)
		kept := make([]Alert, 0, len(alerts))
		for _, a := range alerts {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		return kept, len(kept) != len(alerts)
	default:
		return alerts, false
	}
}
