package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	cerr "github.com/saeidalz13/battlesquares/internal/error"
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
)

const (
	HeaderSecret = "secret"

	defaultPollInterval   = time.Second * 2
	defaultRequestTimeout = time.Second * 10
	maxErrBodyLen         = 256
)

type BattleSquaresClient struct {
	baseUrl        string
	playerName     string
	httpClient     *http.Client
	requestTimeout time.Duration
	pollInterval   time.Duration
	waitTimeout    time.Duration
}

type Option func(*BattleSquaresClient)

func NewBattleSquaresClient(baseUrl, playerName string, optFuncs ...Option) *BattleSquaresClient {
	c := BattleSquaresClient{
		baseUrl:        strings.TrimRight(baseUrl, "/"),
		playerName:     playerName,
		requestTimeout: defaultRequestTimeout,
		pollInterval:   defaultPollInterval,
	}
	for _, opt := range optFuncs {
		opt(&c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.requestTimeout}
	}
	return &c
}

// The client is used as is and never modified. WithRequestTimeout
// only applies when no client is given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *BattleSquaresClient) {
		c.httpClient = httpClient
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *BattleSquaresClient) {
		if timeout > 0 {
			c.requestTimeout = timeout
		}
	}
}

func WithPollInterval(interval time.Duration) Option {
	return func(c *BattleSquaresClient) {
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

// Zero means a wait is bounded only by its context.
func WithWaitTimeout(timeout time.Duration) Option {
	return func(c *BattleSquaresClient) {
		c.waitTimeout = timeout
	}
}

func (c *BattleSquaresClient) PlayerName() string {
	return c.playerName
}

func (c *BattleSquaresClient) PollInterval() time.Duration {
	return c.pollInterval
}

// NewGame creates a game for numberOfPlayers and returns its id.
func (c *BattleSquaresClient) NewGame(ctx context.Context, numberOfPlayers int) (int, error) {
	var gameId int
	if err := c.getJSON(ctx, fmt.Sprintf("/new/%d", numberOfPlayers), nil, &gameId); err != nil {
		log.Printf("error creating a new game: %v", err)
		return 0, err
	}
	return gameId, nil
}

func (c *BattleSquaresClient) Connect(ctx context.Context, gameId int) (Session, error) {
	var resp RespConnect
	path := fmt.Sprintf("/connect/%d/%s", gameId, url.PathEscape(c.playerName))
	if err := c.getJSON(ctx, path, nil, &resp); err != nil {
		log.Printf("error connecting to the game %d: %v", gameId, err)
		return Session{}, err
	}
	return Session{GameId: gameId, PlayerId: resp.PlayerId, Secret: resp.Secret}, nil
}

func (c *BattleSquaresClient) Info(ctx context.Context) ([]GameInfo, error) {
	var infos []GameInfo
	if err := c.getJSON(ctx, "/info", nil, &infos); err != nil {
		log.Printf("error getting game info: %v", err)
		return nil, err
	}
	return infos, nil
}

func (c *BattleSquaresClient) AllInfo(ctx context.Context) ([]GameInfo, error) {
	var infos []GameInfo
	if err := c.getJSON(ctx, "/info/all", nil, &infos); err != nil {
		log.Printf("error getting all game info: %v", err)
		return nil, err
	}
	return infos, nil
}

func (c *BattleSquaresClient) GameInfo(ctx context.Context, gameId int) (GameInfo, error) {
	var info GameInfo
	if err := c.getJSON(ctx, fmt.Sprintf("/info/%d", gameId), nil, &info); err != nil {
		return GameInfo{}, err
	}
	if info.Id == 0 {
		info.Id = gameId
	}
	return info, nil
}

// SubmitAction sends the action code with the session secret as a
// header. ActionNone has no code and is never sent.
func (c *BattleSquaresClient) SubmitAction(ctx context.Context, session Session, action mb.Action) (string, error) {
	code := action.Code()
	if code == "" {
		return "", cerr.ErrNoAction
	}

	path := fmt.Sprintf("/action/%d/%s/%s/", session.GameId, url.PathEscape(session.PlayerId.String()), code)
	header := http.Header{}
	header.Set(HeaderSecret, session.Secret)

	body, err := c.get(ctx, path, header)
	if err != nil {
		log.Printf("error performing action %q for player %s in game %d: %v", code, session.PlayerId, session.GameId, err)
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// PerformActionWhenAllowed waits for the planning phase and then
// submits action.
func (c *BattleSquaresClient) PerformActionWhenAllowed(ctx context.Context, session Session, action mb.Action) (string, error) {
	if _, err := c.WaitForState(ctx, session.GameId, mb.GameStateInfoAndPlanning); err != nil {
		return "", err
	}
	return c.SubmitAction(ctx, session, action)
}

func (c *BattleSquaresClient) getJSON(ctx context.Context, path string, header http.Header, out interface{}) error {
	body, err := c.get(ctx, path, header)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response of %s: %w", path, err)
	}
	return nil
}

func (c *BattleSquaresClient) get(ctx context.Context, path string, header http.Header) ([]byte, error) {
	reqUrl := c.baseUrl + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := string(body)
		if len(excerpt) > maxErrBodyLen {
			excerpt = excerpt[:maxErrBodyLen]
		}
		return nil, cerr.ErrResponseStatus(http.MethodGet, reqUrl, resp.StatusCode, excerpt)
	}
	return body, nil
}
