package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"artisty/internal/domain"
	sessionrepo "artisty/internal/repository/session"
	userrepo "artisty/internal/repository/user"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

const (
	ProviderGoogle = "google"
	ProviderGithub = "github"
)

var ErrUnknownProvider = errors.New("unknown provider")

type userRepo interface {
	UpsertByEmail(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type sessionRepo interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// Config carries the provider credentials and the public base URL the
// provider redirects back to.
type Config struct {
	BaseURL            string
	GoogleClientID     string
	GoogleClientSecret string
	GithubClientID     string
	GithubClientSecret string
	SessionTTL         time.Duration
}

// Service is the identity gate. Sign-in is delegated to the social providers
// through the OAuth2 code flow; the service only keeps the resulting account
// and session records and answers "who is this token".
type Service struct {
	users     userRepo
	sessions  sessionRepo
	providers map[string]*oauth2.Config
	http      *http.Client
	ttl       time.Duration
}

func New(users userrepo.Repository, sessions sessionrepo.Repository, cfg Config) *Service {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	providers := map[string]*oauth2.Config{
		ProviderGoogle: {
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  cfg.BaseURL + "/api/auth/callback/google",
			Scopes:       []string{"openid", "email", "profile"},
		},
		ProviderGithub: {
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubClientSecret,
			Endpoint:     github.Endpoint,
			RedirectURL:  cfg.BaseURL + "/api/auth/callback/github",
			Scopes:       []string{"read:user", "user:email"},
		},
	}

	return &Service{
		users:     users,
		sessions:  sessions,
		providers: providers,
		http:      &http.Client{Timeout: 10 * time.Second},
		ttl:       ttl,
	}
}

// AuthCodeURL returns the provider page to redirect the browser to.
func (s *Service) AuthCodeURL(provider, state string) (string, error) {
	cfg, ok := s.providers[provider]
	if !ok {
		return "", ErrUnknownProvider
	}
	if provider == ProviderGoogle {
		return cfg.AuthCodeURL(state,
			oauth2.AccessTypeOffline,
			oauth2.SetAuthURLParam("prompt", "select_account consent"),
		), nil
	}
	return cfg.AuthCodeURL(state), nil
}

// CompleteSocialLogin exchanges the authorization code, fetches the profile
// from the provider, upserts the account by email, and opens a session.
// Returns the identity and the session token to hand to the browser.
func (s *Service) CompleteSocialLogin(ctx context.Context, provider, code string) (*domain.Identity, string, error) {
	cfg, ok := s.providers[provider]
	if !ok {
		return nil, "", ErrUnknownProvider
	}

	exchCtx := context.WithValue(ctx, oauth2.HTTPClient, s.http)
	token, err := cfg.Exchange(exchCtx, code)
	if err != nil {
		return nil, "", fmt.Errorf("exchange code: %w", err)
	}

	profile, err := s.fetchProfile(ctx, provider, token.AccessToken)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s profile: %w", provider, err)
	}
	if profile.Email == "" {
		return nil, "", fmt.Errorf("%s profile has no email", provider)
	}

	u, err := s.users.UpsertByEmail(ctx, domain.User{
		ID:    uuid.NewString(),
		Email: profile.Email,
		Name:  profile.Name,
		Image: profile.Image,
	})
	if err != nil {
		return nil, "", err
	}

	sessionToken, err := s.issueSession(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}

	return &domain.Identity{UserID: u.ID, Email: u.Email, Name: u.Name}, sessionToken, nil
}

// Identity resolves a session token to the logged-in user. A missing,
// unknown, or expired token yields (nil, nil); expired sessions are deleted
// on the way out. A non-nil error means the session store itself failed.
func (s *Service) Identity(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, nil
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, nil
	}

	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &domain.Identity{UserID: u.ID, Email: u.Email, Name: u.Name}, nil
}

// SignOut revokes the session. Unknown tokens are not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// SessionTTL is the lifetime handed to session cookies.
func (s *Service) SessionTTL() time.Duration {
	return s.ttl
}

type profile struct {
	Email string
	Name  string
	Image *string
}

func (s *Service) fetchProfile(ctx context.Context, provider, accessToken string) (*profile, error) {
	switch provider {
	case ProviderGoogle:
		return s.fetchGoogleProfile(ctx, accessToken)
	case ProviderGithub:
		return s.fetchGithubProfile(ctx, accessToken)
	default:
		return nil, ErrUnknownProvider
	}
}

func (s *Service) fetchGoogleProfile(ctx context.Context, accessToken string) (*profile, error) {
	var out struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := s.getJSON(ctx, "https://www.googleapis.com/oauth2/v2/userinfo", accessToken, &out); err != nil {
		return nil, err
	}
	p := &profile{Email: out.Email, Name: out.Name}
	if out.Picture != "" {
		p.Image = &out.Picture
	}
	return p, nil
}

func (s *Service) fetchGithubProfile(ctx context.Context, accessToken string) (*profile, error) {
	var out struct {
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := s.getJSON(ctx, "https://api.github.com/user", accessToken, &out); err != nil {
		return nil, err
	}

	name := out.Name
	if name == "" {
		name = out.Login
	}
	p := &profile{Email: out.Email, Name: name}
	if out.AvatarURL != "" {
		p.Image = &out.AvatarURL
	}
	if p.Email != "" {
		return p, nil
	}

	// The public email may be hidden; ask for the verified primary one.
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := s.getJSON(ctx, "https://api.github.com/user/emails", accessToken, &emails); err != nil {
		return nil, err
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			p.Email = e.Email
			break
		}
	}
	return p, nil
}

func (s *Service) getJSON(ctx context.Context, url, accessToken string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	res, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", res.StatusCode, url)
	}
	return json.NewDecoder(res.Body).Decode(dst)
}
