package helpers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	FlashCookieName = "fyyur_flash"
	flashStoreKey   = "flash_store"
	flashQueueKey   = "flash_messages"
	flashTTL        = 10 * time.Minute
)

type flashClaims struct {
	Messages []string `json:"messages"`
	jwt.RegisteredClaims
}

// FlashStore carries messages across a redirect in a signed cookie.
type FlashStore struct {
	secret []byte
}

func NewFlashStore(secret string) *FlashStore {
	return &FlashStore{secret: []byte(secret)}
}

func (s *FlashStore) Encode(messages []string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, flashClaims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(flashTTL)),
		},
	})
	return token.SignedString(s.secret)
}

func (s *FlashStore) Decode(value string) ([]string, error) {
	claims := &flashClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims.Messages, nil
}

// Pop returns the messages left by the previous response and clears the
// cookie. A tampered or expired cookie yields nothing.
func (s *FlashStore) Pop(c *gin.Context) []string {
	value, err := c.Cookie(FlashCookieName)
	if errors.Is(err, http.ErrNoCookie) || value == "" {
		return nil
	}

	s.clear(c)
	messages, err := s.Decode(value)
	if err != nil {
		return nil
	}
	return messages
}

// Save writes the request's queued messages for the next page.
func (s *FlashStore) Save(c *gin.Context) error {
	messages := queuedMessages(c)
	if len(messages) == 0 {
		return nil
	}

	value, err := s.Encode(messages, time.Now())
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookieName, value, int(flashTTL.Seconds()), "/", "", false, true)
	return nil
}

func (s *FlashStore) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookieName, "", -1, "/", "", false, true)
}

func SetFlashStore(c *gin.Context, store *FlashStore) {
	c.Set(flashStoreKey, store)
}

func GetFlashStore(c *gin.Context) *FlashStore {
	store, exists := c.Get(flashStoreKey)
	if !exists {
		return nil
	}
	return store.(*FlashStore)
}

// Flash queues a message for the page rendered by this request, or for the
// next one when the request ends in a redirect.
func Flash(c *gin.Context, message string) {
	c.Set(flashQueueKey, append(queuedMessages(c), message))
}

func queuedMessages(c *gin.Context) []string {
	if queued, exists := c.Get(flashQueueKey); exists {
		return queued.([]string)
	}
	return nil
}
