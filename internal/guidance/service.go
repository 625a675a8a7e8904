package guidance

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/cardiocoach/webgateway/internal/coachapi"
	"github.com/cardiocoach/webgateway/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=guidance_test

type coachClient interface {
	GetGuidance(ctx context.Context, userID, lang string) (*coachapi.Guidance, error)
	GetWeeklyDigest(ctx context.Context, userID, lang string) (*coachapi.Digest, error)
}

// Service caches coach guidance and the weekly digest per user and
// language. The backend regenerates both from the same weekly load
// numbers, so an hour-old copy is as good as a fresh one and spares
// the backend its LLM round trip.
type Service struct {
	client     coachClient
	cache      *freecache.Cache
	ttlSeconds int
}

func NewService(client coachClient, cacheSizeMB, ttlSeconds int) *Service {
	return &Service{
		client:     client,
		cache:      freecache.NewCache(cacheSizeMB * 1024 * 1024),
		ttlSeconds: ttlSeconds,
	}
}

func (s *Service) Guidance(ctx context.Context, userID, lang string) (_ *coachapi.Guidance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "guidance.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := fmt.Sprintf("guidance::%s::%s", userID, lang)
	if cached, err := s.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found guidance for %s in cache", userID)
		guidance := &coachapi.Guidance{}
		if err = json.Unmarshal(cached, guidance); err == nil {
			return guidance, nil
		}
		log.Errorf("failed to unmarshal cached guidance for %s: %s", userID, err)
	}

	guidance, err := s.client.GetGuidance(ctx, userID, lang)
	if err != nil {
		return nil, err
	}

	s.cacheSet(cacheKey, guidance)
	return guidance, nil
}

func (s *Service) WeeklyDigest(ctx context.Context, userID, lang string) (_ *coachapi.Digest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "guidance.weeklyDigest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := fmt.Sprintf("digest::%s::%s", userID, lang)
	if cached, err := s.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found weekly digest for %s in cache", userID)
		digest := &coachapi.Digest{}
		if err = json.Unmarshal(cached, digest); err == nil {
			return digest, nil
		}
		log.Errorf("failed to unmarshal cached digest for %s: %s", userID, err)
	}

	digest, err := s.client.GetWeeklyDigest(ctx, userID, lang)
	if err != nil {
		return nil, err
	}

	s.cacheSet(cacheKey, digest)
	return digest, nil
}

func (s *Service) cacheSet(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Errorf("guidance: marshal for cache [%s]: %s", key, err)
		return
	}
	if err := s.cache.Set([]byte(key), raw, s.ttlSeconds); err != nil {
		log.Errorf("guidance: cache set [%s]: %s", key, err)
	}
}
