package uploads

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"easyhire-backend/internal/scorelog"
	"easyhire-backend/internal/scorer"
	"easyhire-backend/internal/shared/metrics"
	"easyhire-backend/internal/shared/telemetry"
	"easyhire-backend/internal/submissions"
)

// TaskQueue runs scoring jobs outside the request path.
type TaskQueue interface {
	Submit(job func(ctx context.Context)) bool
}

// IngestRequest carries one upload: the file plus applicant form fields.
type IngestRequest struct {
	FileName string
	MimeType string
	Size     int64
	Body     io.Reader

	Keywords string

	Name                   string
	Email                  string
	Phone                  string
	WhyJoin                string
	MessageToHiringManager string
	IsNZCitizen            bool
	HasCriminalHistory     bool
}

// IngestResult is the pipeline outcome reported to the client.
type IngestResult struct {
	Filename     string
	SavedTo      string
	LoggedTo     string
	Score        *float64
	SubmissionID string
	Queued       bool
}

// Service runs the upload-and-score ingestion pipeline: validate, store,
// invoke the scorer, append the score log, record the submission.
type Service struct {
	Disk     *DiskStore
	Scorer   scorer.Scorer
	Log      *scorelog.Log
	Store    submissions.Store
	Archiver Archiver
	Queue    TaskQueue

	DefaultKeywords string
}

// Ingest handles a synchronous upload: the caller waits for scoring.
// Scoring failure degrades to a nil score; the upload still succeeds.
func (s *Service) Ingest(ctx context.Context, req IngestRequest) (IngestResult, error) {
	name, path, err := s.validateAndStore(ctx, req)
	if err != nil {
		return IngestResult{}, err
	}

	result := s.scoreStored(ctx, name, path, s.keywords(req))

	sub := s.buildSubmission(req, name, result.Meta)
	if err := s.Store.Add(ctx, sub); err != nil {
		telemetry.Error("upload.store_submission_failed", map[string]any{"file": name, "err": err.Error()})
	}

	return IngestResult{
		Filename:     name,
		SavedTo:      path,
		LoggedTo:     s.Log.Path(),
		Score:        result.Score,
		SubmissionID: sub.ID,
	}, nil
}

// IngestAsync handles the two-phase variant: phase 1 validates and stores,
// then returns the submission id; phase 2 scores in the background and fills
// the record later.
func (s *Service) IngestAsync(ctx context.Context, req IngestRequest) (IngestResult, error) {
	if s.Queue == nil {
		return s.Ingest(ctx, req)
	}

	name, path, err := s.validateAndStore(ctx, req)
	if err != nil {
		return IngestResult{}, err
	}

	sub := s.buildSubmission(req, name, nil)
	if err := s.Store.Add(ctx, sub); err != nil {
		telemetry.Error("upload.store_submission_failed", map[string]any{"file": name, "err": err.Error()})
	}

	keywords := s.keywords(req)
	if !s.Queue.Submit(func(jobCtx context.Context) {
		result := s.scoreStored(jobCtx, name, path, keywords)
		if err := s.Store.SetResult(jobCtx, sub.ID, result.Meta); err != nil {
			telemetry.Error("upload.set_result_failed", map[string]any{
				"submission_id": sub.ID,
				"file":          name,
				"err":           err.Error(),
			})
		}
	}) {
		telemetry.Warn("upload.scoring_queue_full", map[string]any{"submission_id": sub.ID, "file": name})
	}

	return IngestResult{
		Filename:     name,
		SavedTo:      path,
		SubmissionID: sub.ID,
		Queued:       true,
	}, nil
}

func (s *Service) validateAndStore(ctx context.Context, req IngestRequest) (string, string, error) {
	metrics.IncUploadReceived()

	if req.Body == nil {
		metrics.IncUploadRejected()
		return "", "", fmt.Errorf("%w: file is required", ErrValidation)
	}
	if err := ValidateFile(req.FileName, req.MimeType, req.Size); err != nil {
		metrics.IncUploadRejected()
		return "", "", err
	}

	name, path, err := s.Disk.Save(ctx, req.FileName, req.Body)
	if err != nil {
		return "", "", fmt.Errorf("store upload: %w", err)
	}

	if s.Archiver != nil {
		go s.Archiver.Archive(context.WithoutCancel(ctx), name, path)
	}

	return name, path, nil
}

// scoreStored invokes the scorer and appends the score log entry. Invocation
// failures are logged and recorded as a nil score.
func (s *Service) scoreStored(ctx context.Context, name, path, keywords string) scorer.Result {
	start := time.Now()
	result, err := s.Scorer.Score(ctx, scorer.Request{FilePath: path, Keywords: keywords})
	metrics.ObserveScoringDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	if err != nil {
		metrics.IncScoringFailed()
		telemetry.Error("scorer.invoke_failed", map[string]any{"file": name, "err": err.Error()})
		result = scorer.Result{Meta: map[string]any{"error": err.Error()}}
	} else {
		metrics.IncScoringSucceeded()
	}

	if err := s.Log.Append(scorelog.Entry{
		File:  name,
		Path:  path,
		Score: result.Score,
		Meta:  result.Meta,
	}); err != nil {
		telemetry.Error("scorelog.append_failed", map[string]any{"file": name, "err": err.Error()})
	}

	return result
}

func (s *Service) buildSubmission(req IngestRequest, name string, result map[string]any) submissions.Submission {
	return submissions.Submission{
		ID:                     uuid.NewString(),
		SubmittedAt:            time.Now().UTC().Format(time.RFC3339),
		FileName:               name,
		FileType:               req.MimeType,
		Name:                   req.Name,
		Email:                  req.Email,
		Phone:                  req.Phone,
		WhyJoin:                req.WhyJoin,
		MessageToHiringManager: req.MessageToHiringManager,
		IsNZCitizen:            req.IsNZCitizen,
		HasCriminalHistory:     req.HasCriminalHistory,
		Result:                 result,
	}
}

func (s *Service) keywords(req IngestRequest) string {
	if strings.TrimSpace(req.Keywords) != "" {
		return req.Keywords
	}
	return s.DefaultKeywords
}
