// stats — HTTP-клиент внешнего сервиса статистики просмотров.
//
// Сервис статистики принимает факты просмотров (POST /hit) и отдаёт
// агрегаты по URI за период (GET /stats). Недоступность статистики
// не должна влиять на доступность events-сервиса: вызывающий код
// обязан логировать ошибки клиента, а не возвращать их наружу.
package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// timeLayout — формат меток времени в API сервиса статистики.
const timeLayout = "2006-01-02 15:04:05"

// Client — клиент сервиса статистики.
type Client struct {
	baseURL string
	app     string
	http    *http.Client
}

// hitRequest — тело POST /hit.
type hitRequest struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// viewStats — элемент ответа GET /stats.
type viewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// New создает клиента. app — идентификатор сервиса в статистике.
func New(baseURL, app string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		app:     app,
		http:    &http.Client{Timeout: timeout},
	}
}

// Hit регистрирует просмотр uri с адреса ip.
func (c *Client) Hit(ctx context.Context, uri, ip string) error {
	const op = "clients.stats.Hit"

	body, err := json.Marshal(hitRequest{
		App:       c.app,
		URI:       uri,
		IP:        ip,
		Timestamp: time.Now().UTC().Format(timeLayout),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	return nil
}

// Views возвращает количество просмотров по каждому uri за период.
// Ключи результирующей map — запрошенные uri; отсутствие ключа
// означает ноль просмотров.
func (c *Client) Views(ctx context.Context, start, end time.Time, uris []string, unique bool) (map[string]int64, error) {
	const op = "clients.stats.Views"

	q := url.Values{}
	q.Set("start", start.UTC().Format(timeLayout))
	q.Set("end", end.UTC().Format(timeLayout))
	if len(uris) > 0 {
		q.Set("uris", strings.Join(uris, ","))
	}
	q.Set("unique", strconv.FormatBool(unique))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var stats []viewStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views := make(map[string]int64, len(stats))
	for _, s := range stats {
		views[s.URI] += s.Hits
	}

	return views, nil
}
