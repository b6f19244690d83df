package ledger

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bitmark-inc/bitmark-sdk-go/account"
	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "ledger"
	defaultTimeout = 30 * time.Second
	statusOK       = "ok"
)

var (
	errResponseStatus = fmt.Errorf("mint response status not ok")
	errEmptyEndpoint  = fmt.Errorf("empty ledger endpoint")
)

// MintRequest is the metadata bundle a ledger service turns into a token.
type MintRequest struct {
	DatasetID   string `json:"dataset_id"`
	ManifestURL string `json:"manifest_url"`
	Owner       string `json:"owner"`
}

// Minter - interface to a ledger service that mints a token for a dataset
// and returns its transaction id.
type Minter interface {
	Mint(ctx context.Context, req MintRequest) (string, error)
}

type client struct {
	endpoint   string
	signer     account.Account
	httpClient *http.Client
}

type mintResponse struct {
	Status string `json:"status"`
	Data   struct {
		TxID string `json:"tx_id"`
	} `json:"data"`
}

// Mint submits a signed mint request to the remote ledger service.
func (c client) Mint(ctx context.Context, req MintRequest) (string, error) {
	if c.endpoint == "" {
		return "", errEmptyEndpoint
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(map[string]string{
		"payload":   string(payload),
		"requester": c.signer.AccountNumber(),
		"signature": hex.EncodeToString(c.signer.Sign(payload)),
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/mint", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	d, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var mr mintResponse
	if err := json.Unmarshal(d, &mr); err != nil {
		return "", err
	}
	if mr.Status != statusOK {
		return "", errResponseStatus
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"dataset": req.DatasetID,
		"tx":      mr.Data.TxID,
	}).Info("minted dataset token")

	return mr.Data.TxID, nil
}

// New - remote ledger service client signing requests with the given account
func New(endpoint string, signer account.Account, httpClient *http.Client) Minter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &client{
		endpoint:   endpoint,
		signer:     signer,
		httpClient: httpClient,
	}
}
