// Package service exposes the proving engine over HTTP: submit a proof,
// fetch it back, re-verify it, or watch it being built round by round.
package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zokerlab/zkboo/circuits"
	"github.com/zokerlab/zkboo/store"
	"github.com/zokerlab/zkboo/zkboo"
)

// Handler wires the proof store and the progress hub into gin route
// handlers.
type Handler struct {
	store *store.PostgresStore
	hub   *Hub
}

// NewHandler returns a Handler backed by st and broadcasting through hub.
func NewHandler(st *store.PostgresStore, hub *Hub) *Handler {
	return &Handler{store: st, hub: hub}
}

// SetupRouter builds the gin engine exposing the proof submission API.
func SetupRouter(st *store.PostgresStore, hub *Hub) *gin.Engine {
	r := gin.Default()
	h := NewHandler(st, hub)

	r.POST("/proofs", h.handleCreateProof)
	r.GET("/proofs/:id", h.handleGetProof)
	r.POST("/proofs/:id/verify", h.handleVerifyProof)
	r.GET("/proofs/:id/stream", hub.Subscribe)

	return r
}

type createProofRequest struct {
	Circuit   string   `json:"circuit" binding:"required"`
	Secret    []uint32 `json:"secret" binding:"required"`
	Public    []uint32 `json:"public"`
	OutputLen int      `json:"outputLen" binding:"required"`
}

type createProofResponse struct {
	ID           string   `json:"id"`
	PublicOutput []uint32 `json:"publicOutput"`
}

func (h *Handler) handleCreateProof(c *gin.Context) {
	var req createProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := circuits.Lookup(req.Circuit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	onRound := zkboo.RoundProgress(func(round int, commitments [zkboo.Parties][]byte) {
		event := fmt.Sprintf(`{"round":%d,"commitments":[%q,%q,%q]}`, round,
			hex.EncodeToString(commitments[0]), hex.EncodeToString(commitments[1]), hex.EncodeToString(commitments[2]))
		h.hub.Broadcast([]byte(event))
	})

	proof, err := zkboo.ProveWithParams(zkboo.DefaultParams(), req.Secret, req.Public, req.OutputLen, pair.Prover, onRound)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.store.Save(c.Request.Context(), proof.Marshal())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, createProofResponse{ID: rec.ID.String(), PublicOutput: proof.PublicOutput})
}

func (h *Handler) handleGetProof(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	rec, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        rec.ID.String(),
		"createdAt": rec.CreatedAt,
		"blob":      hex.EncodeToString(rec.Blob),
	})
}

type verifyProofRequest struct {
	Circuit string   `json:"circuit" binding:"required"`
	Public  []uint32 `json:"public"`
}

func (h *Handler) handleVerifyProof(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req verifyProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := circuits.Lookup(req.Circuit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := verifyStoredProof(c.Request.Context(), h.store, id, req.Public, pair.Verifier)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": ok})
}

// verifyStoredProof re-derives the challenge and response from a
// persisted proof's full view set and replays Verify against it. The
// wire format does not carry the original public input words (only the
// reconstructed public output), so a caller re-verifying a circuit that
// takes public input must resupply those words in the request body.
func verifyStoredProof(ctx context.Context, st *store.PostgresStore, id uuid.UUID, publicInput []uint32, verifier zkboo.VerifierCircuit) (bool, error) {
	rec, err := st.Get(ctx, id)
	if err != nil {
		return false, err
	}
	proof, err := zkboo.UnmarshalProof(rec.Blob)
	if err != nil {
		return false, err
	}

	challenge := zkboo.QueryRandomOracle(proof.InputLen, proof.OutputLen, proof.OutputShares, proof.Commitments)
	response := zkboo.BuildResponse(proof, challenge)
	rebuilt := zkboo.RebuildProof(proof, challenge)

	return zkboo.Verify(proof.InputLen, publicInput, proof.PublicOutput, challenge, rebuilt, response, verifier)
}
