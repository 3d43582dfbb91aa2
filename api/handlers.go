package api

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stellarlinkco/rag-bench/internal/dataset"
)

// adjudicateRequest carries human review edits. Only supplied fields
// change; hallucination exists solely for this path, the benchmark
// never sets it true.
type adjudicateRequest struct {
	Correct       *bool `json:"correct,omitempty"`
	Prompt        *bool `json:"prompt,omitempty"`
	Hallucination *bool `json:"hallucination,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// loadResults reads the current result file. A missing file is 404, an
// unreadable or unparsable one is 500: a torn file is a server problem,
// not an empty result set.
func (s *Server) loadResults(c *gin.Context) (*dataset.Dataset, bool) {
	ds, err := dataset.Load(s.resultPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no results recorded yet"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return ds, true
}

func (s *Server) handleGetResults(c *gin.Context) {
	ds, ok := s.loadResults(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ds.Root())
}

func (s *Server) handleGetDocument(c *gin.Context) {
	docID, err := strconv.Atoi(c.Param("doc"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document id must be an integer"})
		return
	}

	ds, ok := s.loadResults(c)
	if !ok {
		return
	}

	for _, doc := range ds.Documents() {
		if doc.ID() == docID {
			questions := make([]gin.H, 0, len(doc.Questions()))
			for _, q := range doc.Questions() {
				questions = append(questions, gin.H{
					"id":             q.ID(),
					"actualQuestion": q.ActualQuestion(),
					"expectedAnswer": q.ExpectedAnswer(),
					"answer":         q.Answer(),
				})
			}
			c.JSON(http.StatusOK, gin.H{"id": docID, "questions": questions})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
}

func (s *Server) handleAdjudicate(c *gin.Context) {
	docID, err := strconv.Atoi(c.Param("doc"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document id must be an integer"})
		return
	}
	questionID, err := strconv.Atoi(c.Param("question"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question id must be an integer"})
		return
	}

	var req adjudicateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Correct == nil && req.Prompt == nil && req.Hallucination == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no adjudication fields provided"})
		return
	}

	ds, ok := s.loadResults(c)
	if !ok {
		return
	}

	for _, doc := range ds.Documents() {
		if doc.ID() != docID {
			continue
		}
		for _, q := range doc.Questions() {
			if q.ID() != questionID {
				continue
			}

			answer := q.Answer()
			if req.Correct != nil {
				answer["correct"] = *req.Correct
			}
			if req.Prompt != nil {
				answer["prompt"] = *req.Prompt
			}
			if req.Hallucination != nil {
				answer["hallucination"] = *req.Hallucination
			}

			if err := s.writer.Write(ds.Root()); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": questionID, "answer": answer})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
}

func (s *Server) handleListRuns(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history not configured"})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	entries, err := s.history.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{
			"id":               e.ID,
			"provider":         e.Provider,
			"model":            e.Model,
			"dataset":          e.Dataset,
			"questions":        e.Questions,
			"correct":          e.Correct,
			"mean_similarity":  e.MeanSimilarity,
			"mean_answer_time": e.MeanAnswerTime,
			"run_date":         e.RunDate.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"runs": out})
}
