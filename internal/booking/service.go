package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Service struct {
	log        *zap.Logger
	repository Repository
	mailer     Mailer
	verifier   ChallengeVerifier
}

func NewService(log *zap.Logger, repo Repository, mailer Mailer, verifier ChallengeVerifier) *Service {
	return &Service{
		log:        log,
		repository: repo,
		mailer:     mailer,
		verifier:   verifier,
	}
}

// Submit verifies the optional challenge token, persists the request and
// sends one notification email. Every call persists a fresh record.
func (s *Service) Submit(ctx context.Context, dto *SubmitRequest, remoteIP string) (*Request, error) {
	if err := s.verifier.Verify(ctx, dto.ChallengeToken, remoteIP); err != nil {
		return nil, err
	}

	if !s.mailer.Configured() {
		return nil, ErrMailNotConfigured
	}

	request := &Request{
		Name:      dto.Name,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Town:      dto.Town,
		Address:   dto.Address,
		Date:      dto.Date,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Details:   dto.Details,
	}

	if err := s.repository.Create(request); err != nil {
		return nil, fmt.Errorf("failed to persist booking request: %w", err)
	}

	if err := s.mailer.SendBookingNotice(request); err != nil {
		return nil, err
	}

	s.log.Info("booking request submitted",
		zap.String("town", request.Town),
		zap.String("date", request.Date))

	return request, nil
}

func (s *Service) List() ([]Request, error) {
	return s.repository.List()
}

func (s *Service) Close(id uint) error {
	return s.repository.Close(id)
}
