package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/devlink/server/internal/models"
	"github.com/google/uuid"
)

// AlertTimeout is how long a transient notification stays visible.
const AlertTimeout = 5 * time.Second

// Dispatcher issues mutation requests and commits only server-confirmed
// results into the store. On failure it dispatches the matching error
// action with the normalized {message, statusCode} and raises one
// alert per field-level validation error. State never changes before
// the round trip completes.
type Dispatcher struct {
	api      *API
	store    *Store
	alertTTL time.Duration
}

func NewDispatcher(api *API, store *Store) *Dispatcher {
	return &Dispatcher{api: api, store: store, alertTTL: AlertTimeout}
}

// SetAlert raises a transient notification and arms its auto-dismiss.
func (d *Dispatcher) SetAlert(msg, alertType string) string {
	id := uuid.New().String()
	d.store.Dispatch(Action{Type: SetAlert, Payload: Alert{ID: id, Msg: msg, AlertType: alertType}})

	time.AfterFunc(d.alertTTL, func() {
		d.store.Dispatch(Action{Type: RemoveAlert, Payload: id})
	})

	return id
}

// failure turns any request error into its normalized store form.
func failure(err error) *RequestError {
	var apiErr *apiFailure
	if errors.As(err, &apiErr) {
		return &apiErr.RequestError
	}
	return &RequestError{Message: err.Error()}
}

// fieldAlerts raises one alert per server-side validation message.
func (d *Dispatcher) fieldAlerts(err error) {
	var apiErr *apiFailure
	if !errors.As(err, &apiErr) {
		return
	}
	for _, fe := range apiErr.Fields {
		d.SetAlert(fe.Message, "danger")
	}
}

// --- auth flows ---

func (d *Dispatcher) LoadUser(ctx context.Context) {
	var user models.User
	if err := d.api.Get(ctx, "/api/auth", &user); err != nil {
		d.store.Dispatch(Action{Type: AuthError})
		return
	}
	d.store.Dispatch(Action{Type: UserLoaded, Payload: &user})
}

func (d *Dispatcher) Register(ctx context.Context, name, email, password string) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var res struct {
		Token string `json:"token"`
	}
	if err := d.api.Post(ctx, "/api/users", body, &res); err != nil {
		d.fieldAlerts(err)
		d.store.Dispatch(Action{Type: RegisterFail})
		return
	}

	d.api.SetToken(res.Token)
	d.store.Dispatch(Action{Type: RegisterSuccess, Payload: res.Token})
	d.LoadUser(ctx)
}

func (d *Dispatcher) Login(ctx context.Context, email, password string) {
	body := map[string]string{"email": email, "password": password}
	var res struct {
		Token string `json:"token"`
	}
	if err := d.api.Post(ctx, "/api/auth", body, &res); err != nil {
		d.fieldAlerts(err)
		d.store.Dispatch(Action{Type: LoginFail})
		return
	}

	d.api.SetToken(res.Token)
	d.store.Dispatch(Action{Type: LoginSuccess, Payload: res.Token})
	d.LoadUser(ctx)
}

func (d *Dispatcher) Logout() {
	d.api.SetToken("")
	d.store.Dispatch(Action{Type: ClearProfile})
	d.store.Dispatch(Action{Type: Logout})
}

// --- profile flows ---

func (d *Dispatcher) GetCurrentProfile(ctx context.Context) {
	var profile models.Profile
	if err := d.api.Get(ctx, "/api/profile/me", &profile); err != nil {
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: GetProfile, Payload: &profile})
}

func (d *Dispatcher) GetProfiles(ctx context.Context) {
	d.store.Dispatch(Action{Type: ClearProfile})

	var profiles []*models.Profile
	if err := d.api.Get(ctx, "/api/profile", &profiles); err != nil {
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: GetProfiles, Payload: profiles})
}

func (d *Dispatcher) GetProfileByID(ctx context.Context, userID string) {
	var profile models.Profile
	if err := d.api.Get(ctx, "/api/profile/user/"+userID, &profile); err != nil {
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: GetProfile, Payload: &profile})
}

func (d *Dispatcher) GetGithubRepos(ctx context.Context, username string) {
	var repos json.RawMessage
	if err := d.api.Get(ctx, "/api/profile/github/"+username, &repos); err != nil {
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: GetRepos, Payload: repos})
}

// CreateProfile upserts the profile; edit selects the alert wording.
func (d *Dispatcher) CreateProfile(ctx context.Context, form map[string]any, edit bool) {
	var profile models.Profile
	if err := d.api.Post(ctx, "/api/profile", form, &profile); err != nil {
		d.fieldAlerts(err)
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}

	d.store.Dispatch(Action{Type: GetProfile, Payload: &profile})
	if edit {
		d.SetAlert("Profile Updated", "success")
	} else {
		d.SetAlert("Profile Created", "success")
	}
}

func (d *Dispatcher) AddExperience(ctx context.Context, form map[string]any) {
	var profile models.Profile
	if err := d.api.Put(ctx, "/api/profile/experience", form, &profile); err != nil {
		d.fieldAlerts(err)
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: UpdateProfile, Payload: &profile})
	d.SetAlert("Experience Added", "success")
}

func (d *Dispatcher) AddEducation(ctx context.Context, form map[string]any) {
	var profile models.Profile
	if err := d.api.Put(ctx, "/api/profile/education", form, &profile); err != nil {
		d.fieldAlerts(err)
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: UpdateProfile, Payload: &profile})
	d.SetAlert("Education Added", "success")
}

func (d *Dispatcher) DeleteExperience(ctx context.Context, id string) {
	var profile models.Profile
	if err := d.api.Delete(ctx, "/api/profile/experience/"+id, &profile); err != nil {
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: UpdateProfile, Payload: &profile})
	d.SetAlert("Experience Removed", "success")
}

func (d *Dispatcher) DeleteEducation(ctx context.Context, id string) {
	var profile models.Profile
	if err := d.api.Delete(ctx, "/api/profile/education/"+id, &profile); err != nil {
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: UpdateProfile, Payload: &profile})
	d.SetAlert("Education Removed", "success")
}

func (d *Dispatcher) DeleteAccount(ctx context.Context) {
	if err := d.api.Delete(ctx, "/api/profile", nil); err != nil {
		d.store.Dispatch(Action{Type: ProfileError, Payload: failure(err)})
		return
	}
	d.api.SetToken("")
	d.store.Dispatch(Action{Type: ClearProfile})
	d.store.Dispatch(Action{Type: AccountDeleted})
	d.SetAlert("Your account has been permanently deleted", "")
}

// --- post flows ---

func (d *Dispatcher) GetPosts(ctx context.Context) {
	var posts []*models.Post
	if err := d.api.Get(ctx, "/api/posts", &posts); err != nil {
		d.store.Dispatch(Action{Type: PostError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: GetPosts, Payload: posts})
}

func (d *Dispatcher) GetPost(ctx context.Context, postID string) {
	var post models.Post
	if err := d.api.Get(ctx, "/api/posts/"+postID, &post); err != nil {
		d.store.Dispatch(Action{Type: PostError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: GetPost, Payload: &post})
}

func (d *Dispatcher) AddPost(ctx context.Context, text string) {
	var post models.Post
	if err := d.api.Post(ctx, "/api/posts", map[string]string{"text": text}, &post); err != nil {
		d.fieldAlerts(err)
		d.store.Dispatch(Action{Type: PostError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: AddPost, Payload: &post})
	d.SetAlert("Post Created", "success")
}

func (d *Dispatcher) DeletePost(ctx context.Context, postID string) {
	if err := d.api.Delete(ctx, "/api/posts/"+postID, nil); err != nil {
		d.store.Dispatch(Action{Type: PostError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: DeletePost, Payload: postID})
	d.SetAlert("Post Removed", "success")
}

func (d *Dispatcher) AddLike(ctx context.Context, postID string) {
	var likes []models.Like
	if err := d.api.Put(ctx, fmt.Sprintf("/api/posts/like/%s", postID), nil, &likes); err != nil {
		d.store.Dispatch(Action{Type: PostError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: UpdateLikes, Payload: &LikesUpdate{PostID: postID, Likes: likes}})
}

func (d *Dispatcher) RemoveLike(ctx context.Context, postID string) {
	var likes []models.Like
	if err := d.api.Put(ctx, fmt.Sprintf("/api/posts/unlike/%s", postID), nil, &likes); err != nil {
		d.store.Dispatch(Action{Type: PostError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: UpdateLikes, Payload: &LikesUpdate{PostID: postID, Likes: likes}})
}

func (d *Dispatcher) AddComment(ctx context.Context, postID, text string) {
	var comments []models.Comment
	if err := d.api.Put(ctx, "/api/posts/comment/"+postID, map[string]string{"text": text}, &comments); err != nil {
		d.fieldAlerts(err)
		d.store.Dispatch(Action{Type: PostError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: AddComment, Payload: comments})
	d.SetAlert("Comment Added", "success")
}

func (d *Dispatcher) DeleteComment(ctx context.Context, postID, commentID string) {
	if err := d.api.Delete(ctx, fmt.Sprintf("/api/posts/comment/%s/%s", postID, commentID), nil); err != nil {
		d.store.Dispatch(Action{Type: PostError, Payload: failure(err)})
		return
	}
	d.store.Dispatch(Action{Type: RemoveComment, Payload: commentID})
	d.SetAlert("Comment Removed", "success")
}
