package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tsnevan4204/health-app-sub000/external/ledger"
	"github.com/tsnevan4204/health-app-sub000/pipeline"
	"github.com/tsnevan4204/health-app-sub000/schema"
	"github.com/tsnevan4204/health-app-sub000/score"
	"github.com/tsnevan4204/health-app-sub000/store"
	"github.com/tsnevan4204/health-app-sub000/utils"
)

const (
	defaultTimezone     = "GMT+0"
	defaultDatasetLimit = 20
)

type uploadDatasetRequest struct {
	StartDate        time.Time `json:"start_date" binding:"required"`
	EndDate          time.Time `json:"end_date" binding:"required"`
	Title            string    `json:"title" binding:"required"`
	Description      string    `json:"description"`
	Timezone         string    `json:"timezone"`
	ChronologicalAge int       `json:"chronological_age"`
	Mint             bool      `json:"mint"`
}

// uploadDataset runs one full upload session: fetch, anonymize, upload
// blobs, build and publish the manifest, optionally mint a token, and
// record the session.
func (s *Server) uploadDataset(c *gin.Context) {
	requester := c.GetString("requester")

	var req uploadDatasetRequest
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if req.Timezone == "" {
		req.Timezone = defaultTimezone
	}
	if utils.GetLocation(req.Timezone) == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !req.EndDate.After(req.StartDate) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	age := req.ChronologicalAge
	if age <= 0 {
		age = score.DefaultChronologicalAge(s.rng)
	}

	result, err := s.uploader.Run(c.Request.Context(), pipeline.Request{
		UserID:      requester,
		Title:       req.Title,
		Description: req.Description,
		Range: schema.DateRange{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
		Timezone:         req.Timezone,
		ChronologicalAge: age,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorDatasetUpload, err)
		return
	}

	var mintTxID string
	if req.Mint {
		mintTxID, err = s.minter.Mint(c.Request.Context(), ledger.MintRequest{
			DatasetID:   result.Manifest.DatasetID,
			ManifestURL: result.ManifestReceipt.URL,
			Owner:       result.Manifest.UserPseudonymousID,
		})
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorMintFailed, err)
			return
		}
	}

	record := schema.DatasetRecord{
		ID:           result.Manifest.DatasetID,
		Owner:        result.Manifest.UserPseudonymousID,
		Manifest:     result.Manifest,
		ManifestBlob: result.ManifestReceipt,
		AgeBlob:      result.AgeReceipt,
		MintTxID:     mintTxID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateDataset(record); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorRecordDataset, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dataset_id":   result.Manifest.DatasetID,
		"manifest":     result.Manifest,
		"manifest_url": result.ManifestReceipt.URL,
		"mint_tx_id":   mintTxID,
	})
}

func (s *Server) getDataset(c *gin.Context) {
	record, err := s.store.GetDataset(c.Param("datasetID"))
	if err != nil {
		if errors.Is(err, store.ErrDatasetNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorDatasetNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dataset": record,
	})
}

// getDatasetManifest serves the manifest document as it was published,
// fetched back from the blob store rather than from the session record.
func (s *Server) getDatasetManifest(c *gin.Context) {
	record, err := s.store.GetDataset(c.Param("datasetID"))
	if err != nil {
		if errors.Is(err, store.ErrDatasetNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorDatasetNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	data, err := s.blobStore.Download(c.Request.Context(), record.ManifestBlob.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}

// listDatasets returns the recorded sessions of a pseudonymous owner.
// Sessions are only linkable through the pseudonymous id by design.
func (s *Server) listDatasets(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	limit := int64(defaultDatasetLimit)
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.ParseInt(l, 10, 64)
		if err != nil || parsed <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		limit = parsed
	}

	records, err := s.store.ListDatasets(owner, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"datasets": records,
	})
}
