package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"pagecaster/domain/model"
	"pagecaster/infrastructure/configuration"
	"pagecaster/infrastructure/logger"
	"pagecaster/infrastructure/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const (
	oauthScopes       = "pages_show_list,pages_read_engagement,pages_manage_posts,instagram_basic,instagram_content_publish,public_profile"
	sessionCookieName = "session"
)

type IFacebookOAuthHandler interface {
	Login(ctx *gin.Context)
	Callback(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type facebookOAuthHandler struct {
	conf    *oauth2.Config
	stateMu sync.Mutex
	states  map[string]time.Time // state -> expiry
}

func NewFacebookOAuthHandler() IFacebookOAuthHandler {
	fb := configuration.C.OAuth.Facebook
	return &facebookOAuthHandler{
		conf: &oauth2.Config{
			ClientID:     fb.ClientID,
			ClientSecret: fb.ClientSecret,
			RedirectURL:  fb.RedirectURI,
			Endpoint:     facebook.Endpoint,
		},
		states: map[string]time.Time{},
	}
}

func randomState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Login redirects the browser into the Facebook consent dialog.
func (h *facebookOAuthHandler) Login(c *gin.Context) {
	if h.conf.ClientID == "" || h.conf.RedirectURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facebook oauth not configured"})
		return
	}
	state := randomState()
	h.stateMu.Lock()
	h.states[state] = time.Now().Add(10 * time.Minute)
	h.stateMu.Unlock()

	authURL := h.conf.AuthCodeURL(state, oauth2.SetAuthURLParam("scope", oauthScopes))
	c.Redirect(http.StatusFound, authURL)
}

// Callback exchanges the code for a user token, upgrades it to a long-lived
// token, and mints the session cookie before redirecting to page selection.
func (h *facebookOAuthHandler) Callback(c *gin.Context) {
	lg := logger.GetLogger()
	code := c.Query("code")
	state := c.Query("state")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}
	h.stateMu.Lock()
	exp, ok := h.states[state]
	if ok && time.Now().After(exp) {
		ok = false
	}
	if ok {
		delete(h.states, state)
	}
	h.stateMu.Unlock()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_state"})
		return
	}

	token, err := h.conf.Exchange(c.Request.Context(), code)
	if err != nil {
		lg.WithField("error", err).Error("facebook token exchange failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "token_exchange_failed"})
		return
	}

	longLived, err := h.exchangeLongLived(token.AccessToken)
	if err != nil {
		lg.WithField("error", err).Error("long lived token exchange failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "long_lived_token_failed"})
		return
	}

	identity, err := h.fetchIdentity(longLived)
	if err != nil {
		lg.WithField("error", err).Error("identity fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "identity_fetch_failed"})
		return
	}

	session, err := utils.GenerateSessionToken(&model.SessionClaims{
		UserID:          identity.ID,
		UserName:        identity.Name,
		UserAccessToken: longLived,
	}, configuration.C.App.SecretKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session_token_failed"})
		return
	}

	c.SetCookie(sessionCookieName, session, 3600, "/", "", false, true)
	c.Redirect(http.StatusFound, configuration.C.App.FrontendURL+"/select-page")
}

func (h *facebookOAuthHandler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}

// exchangeLongLived trades a short-lived user token for a long-lived one.
func (h *facebookOAuthHandler) exchangeLongLived(shortToken string) (string, error) {
	u := fmt.Sprintf("%s/%s/oauth/access_token?grant_type=fb_exchange_token&client_id=%s&client_secret=%s&fb_exchange_token=%s",
		configuration.C.Graph.BaseURL, configuration.C.Graph.Version,
		url.QueryEscape(h.conf.ClientID), url.QueryEscape(h.conf.ClientSecret), url.QueryEscape(shortToken))
	resp, err := http.Get(u)
	if err != nil {
		return "", err
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("long lived exchange status %d", resp.StatusCode)
	}
	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return "", err
	}
	return data.AccessToken, nil
}

type fbIdentity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *facebookOAuthHandler) fetchIdentity(accessToken string) (*fbIdentity, error) {
	u := fmt.Sprintf("%s/%s/me?fields=id,name&access_token=%s",
		configuration.C.Graph.BaseURL, configuration.C.Graph.Version, url.QueryEscape(accessToken))
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("identity fetch status %d", resp.StatusCode)
	}
	var identity fbIdentity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}
