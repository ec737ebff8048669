package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/oauth2"

	"interia/internal/config"
	"interia/internal/middleware"
	"interia/internal/models"
	"interia/internal/session"
	"interia/internal/store"
)

const (
	// totpIssuer appears in authenticator apps next to the account.
	totpIssuer = "Interia"

	// oauthStateCookie holds the CSRF state for the Google round-trip.
	oauthStateCookie = "ia_oauth_state"

	// googleUserInfoURL returns the signed-in user's profile for the token.
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	cfg       *config.Config
	sessions  *session.Store
	userStore *store.UserStore
	oauth     *oauth2.Config
}

// NewAuth creates a new Auth handler group.
func NewAuth(cfg *config.Config, sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		cfg:       cfg,
		sessions:  sessions,
		userStore: userStore,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.google.com/o/oauth2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
			},
		},
	}
}

// Login authenticates with email and password. Accounts with TOTP enabled
// get a pending session that admin routes reject until the code verifies.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.userStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}
	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password", "")
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:       user.ID,
		Email:        user.Email,
		DisplayName:  user.DisplayName,
		IsAdmin:      user.IsAdmin(),
		TwoFAPending: user.TOTPEnabled,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"email":          user.Email,
		"display_name":   user.DisplayName,
		"is_admin":       user.IsAdmin(),
		"two_fa_pending": user.TOTPEnabled,
	})
}

// TwoFASetup generates a TOTP secret for the signed-in user and returns
// the provisioning QR code as base64 PNG. The secret stays inactive until
// the first code verifies.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret":  key.Secret(),
		"qr_code": base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// TwoFAVerify validates a TOTP code, enabling 2FA on first use and
// clearing the session's pending flag.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}
	if user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "Two-factor authentication is not set up", "")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, http.StatusUnauthorized, "Invalid code", "")
		return
	}

	// First successful verification activates 2FA for the account.
	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
			return
		}
	}

	sess.TwoFAPending = false
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Verified"})
}

// GoogleRedirect starts the Google sign-in round-trip. The random state is
// pinned in a short-lived cookie and checked on callback.
func (a *Auth) GoogleRedirect(w http.ResponseWriter, r *http.Request) {
	state, err := randomState()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   !a.cfg.IsDev(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((10 * time.Minute).Seconds()),
	})

	http.Redirect(w, r, a.oauth.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback finishes the OAuth round-trip. Only allow-listed emails
// get a session; the account row is created lazily on first sign-in.
func (a *Auth) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		writeError(w, http.StatusUnauthorized, "Invalid OAuth state", "")
		return
	}
	// The state is single-use.
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusUnauthorized, "Missing authorization code", "")
		return
	}

	token, err := a.oauth.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("oauth exchange failed", "error", err)
		writeError(w, http.StatusBadGateway, "Google sign-in failed", "")
		return
	}

	info, err := a.fetchUserInfo(r, token)
	if err != nil {
		slog.Error("oauth userinfo failed", "error", err)
		writeError(w, http.StatusBadGateway, "Google sign-in failed", "")
		return
	}

	if !a.cfg.IsAdminEmail(info.Email) {
		slog.Warn("oauth sign-in rejected", "email", info.Email)
		writeError(w, http.StatusForbidden, "This account is not authorized", "")
		return
	}

	user, err := a.userStore.FindByEmail(info.Email)
	if err != nil {
		slog.Error("oauth user lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}
	if user == nil {
		user, err = a.userStore.CreateOAuth(info.Email, info.Name, models.RoleAdmin)
		if err != nil {
			slog.Error("oauth user create failed", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
			return
		}
	}

	// Google sign-in is the second factor itself: no TOTP gate here.
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin(),
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}

	http.Redirect(w, r, a.cfg.FrontendOrigin+"/admin", http.StatusSeeOther)
}

// VerifyAdmin reports whether the current session belongs to an admin.
// The frontend gates its admin UI on this check.
func (a *Auth) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	isAdmin := sess != nil && sess.IsAdmin && !sess.TwoFAPending
	if !isAdmin {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"is_admin": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"is_admin": true, "email": sess.Email})
}

// Profile returns the signed-in user's account details.
func (a *Auth) Profile(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", "")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// googleUser is the subset of the userinfo response we need.
type googleUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// fetchUserInfo loads the Google profile for an access token.
func (a *Auth) fetchUserInfo(r *http.Request, token *oauth2.Token) (*googleUser, error) {
	client := a.oauth.Client(r.Context(), token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var info googleUser
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// randomState creates an unguessable OAuth state token.
func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
