package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const githubCacheTTL = 10 * time.Minute

type GithubHandler struct {
	redis   *redis.Client
	client  *http.Client
	baseURL string
	token   string
}

func NewGithubHandler(rdb *redis.Client, token string) *GithubHandler {
	return &GithubHandler{
		redis:   rdb,
		client:  &http.Client{},
		baseURL: "https://api.github.com",
		token:   token,
	}
}

// Repos проксирует последние 5 репозиториев пользователя GitHub.
// Ответы кэшируются в Redis, ошибки кэша не влияют на результат
func (h *GithubHandler) Repos(c *gin.Context) {
	username := c.Param("username")
	cacheKey := "github:repos:" + username

	if body, err := h.redis.Get(context.Background(), cacheKey).Bytes(); err == nil {
		c.Data(http.StatusOK, "application/json", body)
		return
	}

	url := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", h.baseURL, username)
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, nil)
	if err != nil {
		serverError(c, err)
		return
	}
	req.Header.Set("User-Agent", "devlink")
	if h.token != "" {
		req.Header.Set("Authorization", "token "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		serverError(c, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusNotFound, gin.H{"msg": "No Github Profile Found"})
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		serverError(c, err)
		return
	}

	h.redis.Set(context.Background(), cacheKey, body, githubCacheTTL)

	c.Data(http.StatusOK, "application/json", body)
}
