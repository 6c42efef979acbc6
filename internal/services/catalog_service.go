package services

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/observability"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/search"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

var videoIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ExtractYouTubeID accepts a bare video id, a youtu.be short link or a
// youtube.com watch URL and returns the video id. Anything else is returned
// unchanged.
func ExtractYouTubeID(urlOrID string) string {
	urlOrID = strings.TrimSpace(urlOrID)
	if len(urlOrID) == 11 {
		return urlOrID
	}
	u, err := url.Parse(urlOrID)
	if err != nil || u.Host == "" {
		return urlOrID
	}
	host := u.Hostname()
	switch {
	case host == "youtu.be":
		return strings.TrimPrefix(u.Path, "/")
	case strings.Contains(host, "youtube.com"):
		if v := u.Query().Get("v"); v != "" {
			return v
		}
	}
	return urlOrID
}

func videoID(urlOrID string) (string, error) {
	id := ExtractYouTubeID(urlOrID)
	if id == "" || !videoIDRE.MatchString(id) {
		return "", ErrInvalidVideo
	}
	return id, nil
}

// CatalogService manages the admin-curated videos, nature sounds and the
// assistant knowledge base. Reads are public; writes need an administrator.
type CatalogService struct {
	Store *store.Store
	Now   Clock
}

// Videos lists resource videos, newest first.
func (s *CatalogService) Videos(ctx context.Context) []domain.ResourceVideo {
	return repo.ResourceVideos().List(ctx, s.Store)
}

// AddVideo stores a resource video.
func (s *CatalogService) AddVideo(ctx context.Context, actor *domain.User, title, description, urlOrID string) (domain.ResourceVideo, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "AddVideo")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return domain.ResourceVideo{}, err
	}
	title, err := text(title, 0)
	if err != nil {
		return domain.ResourceVideo{}, err
	}
	id, err := videoID(urlOrID)
	if err != nil {
		return domain.ResourceVideo{}, err
	}
	v := domain.ResourceVideo{
		ID:          stamp(s.Now.now()),
		Title:       title,
		Description: strings.TrimSpace(description),
		VideoID:     id,
	}
	if err := repo.ResourceVideos().Prepend(ctx, s.Store, v); err != nil {
		return domain.ResourceVideo{}, err
	}
	observability.RecordContent("video", "create")
	return v, nil
}

// DeleteVideo removes a resource video.
func (s *CatalogService) DeleteVideo(ctx context.Context, actor *domain.User, id string) error {
	return s.remove(ctx, actor, "video", func() error { return repo.ResourceVideos().Delete(ctx, s.Store, id) })
}

// Sounds lists nature sounds, newest first.
func (s *CatalogService) Sounds(ctx context.Context) []domain.NatureSound {
	return repo.NatureSounds().List(ctx, s.Store)
}

// AddSound stores a nature sound.
func (s *CatalogService) AddSound(ctx context.Context, actor *domain.User, name, urlOrID string) (domain.NatureSound, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "AddSound")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return domain.NatureSound{}, err
	}
	name, err := text(name, 0)
	if err != nil {
		return domain.NatureSound{}, err
	}
	id, err := videoID(urlOrID)
	if err != nil {
		return domain.NatureSound{}, err
	}
	n := domain.NatureSound{ID: stamp(s.Now.now()), Name: name, VideoID: id}
	if err := repo.NatureSounds().Prepend(ctx, s.Store, n); err != nil {
		return domain.NatureSound{}, err
	}
	observability.RecordContent("sound", "create")
	return n, nil
}

// DeleteSound removes a nature sound.
func (s *CatalogService) DeleteSound(ctx context.Context, actor *domain.User, id string) error {
	return s.remove(ctx, actor, "sound", func() error { return repo.NatureSounds().Delete(ctx, s.Store, id) })
}

// Knowledge lists the assistant knowledge base, newest first.
func (s *CatalogService) Knowledge(ctx context.Context) []domain.KnowledgeDocument {
	return repo.Knowledge().List(ctx, s.Store)
}

// AddKnowledge stores a knowledge document. Title and content are required.
func (s *CatalogService) AddKnowledge(ctx context.Context, actor *domain.User, title, content string) (domain.KnowledgeDocument, error) {
	ctx, span := otel.Tracer("services/CatalogService").Start(ctx, "AddKnowledge")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return domain.KnowledgeDocument{}, err
	}
	title, err := text(title, 0)
	if err != nil {
		return domain.KnowledgeDocument{}, err
	}
	content, err = text(content, 0)
	if err != nil {
		return domain.KnowledgeDocument{}, err
	}
	d := domain.KnowledgeDocument{ID: stamp(s.Now.now()), Title: title, Content: content}
	if err := repo.Knowledge().Prepend(ctx, s.Store, d); err != nil {
		return domain.KnowledgeDocument{}, err
	}
	observability.RecordContent("knowledge", "create")
	return d, nil
}

// ImportKnowledgeMarkdown flattens a Markdown document (tables become one
// fact per row) and stores it as a knowledge document.
func (s *CatalogService) ImportKnowledgeMarkdown(ctx context.Context, actor *domain.User, title string, src []byte) (domain.KnowledgeDocument, error) {
	flat, err := search.FlattenMarkdown(src)
	if err != nil {
		return domain.KnowledgeDocument{}, err
	}
	return s.AddKnowledge(ctx, actor, title, string(flat))
}

// DeleteKnowledge removes a knowledge document.
func (s *CatalogService) DeleteKnowledge(ctx context.Context, actor *domain.User, id string) error {
	return s.remove(ctx, actor, "knowledge", func() error { return repo.Knowledge().Delete(ctx, s.Store, id) })
}

func (s *CatalogService) remove(ctx context.Context, actor *domain.User, entity string, del func() error) error {
	_, span := otel.Tracer("services/CatalogService").Start(ctx, "Delete")
	defer span.End()

	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := del(); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	observability.RecordContent(entity, "delete")
	return nil
}
