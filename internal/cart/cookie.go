package cart

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

type cookieRepository struct{}

func NewCookieRepository() Repository {
	return &cookieRepository{}
}

func (c *cookieRepository) Read(r *http.Request) []int64 {

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	return parseIDs(cookie.Value)
}

func (c *cookieRepository) Write(w http.ResponseWriter, ids []int64) {
	http.SetCookie(w, &http.Cookie{
		Name:  CookieName,
		Value: joinIDs(ids),
		Path:  "/",
	})
}

func (c *cookieRepository) Add(w http.ResponseWriter, r *http.Request, id int64) []int64 {

	ids := append(c.Read(r), id)
	c.Write(w, ids)

	return ids
}

func (c *cookieRepository) Remove(w http.ResponseWriter, r *http.Request, id int64) []int64 {

	current := c.Read(r)
	updated := make([]int64, 0, len(current))

	for _, existing := range current {
		if existing != id {
			updated = append(updated, existing)
		}
	}

	c.Write(w, updated)

	return updated
}

func (c *cookieRepository) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    CookieName,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
}

// parseIDs tolerates the cookie having been written by hand: empty and
// malformed tokens are silently dropped, negatives included.
func parseIDs(value string) []int64 {

	if value == "" {
		return nil
	}

	tokens := strings.Split(value, ",")
	ids := make([]int64, 0, len(tokens))

	for _, token := range tokens {

		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil || id < 0 {
			continue
		}

		ids = append(ids, id)
	}

	return ids
}

func joinIDs(ids []int64) string {

	tokens := make([]string, len(ids))

	for i, id := range ids {
		tokens[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(tokens, ",")
}
