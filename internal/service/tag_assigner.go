package service

import (
	"context"

	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/repository"
	"github.com/atareao/bloc/pkg/textutil"
	"github.com/rotisserie/eris"
)

// TagAssigner 본문 해시태그를 태그로 upsert 하고 게시글에 연결
type TagAssigner struct {
	tagRepo     repository.TagRepository
	postTagRepo repository.PostTagRepository
}

// NewTagAssigner creates a new TagAssigner
func NewTagAssigner(tagRepo repository.TagRepository, postTagRepo repository.PostTagRepository) *TagAssigner {
	return &TagAssigner{tagRepo: tagRepo, postTagRepo: postTagRepo}
}

// hashtagCandidate slug 기준으로 병합된 해시태그 (먼저 나온 표기 우선)
type hashtagCandidate struct {
	tag  string
	slug string
}

func candidatesFrom(content string) []hashtagCandidate {
	tokens := textutil.ExtractHashtags(content)
	seen := make(map[string]struct{}, len(tokens))
	out := make([]hashtagCandidate, 0, len(tokens))
	for _, token := range tokens {
		slug := textutil.Slugify(token)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, hashtagCandidate{tag: token, slug: slug})
	}
	return out
}

// Assign upserts every hashtag of content and links them to postID.
// Tags that were stored are returned even when a later step fails.
func (a *TagAssigner) Assign(ctx context.Context, postID int64, content string) ([]domain.Tag, error) {
	candidates := candidatesFrom(content)
	if len(candidates) == 0 {
		return []domain.Tag{}, nil
	}

	tags := make([]domain.Tag, 0, len(candidates))
	ids := make([]int64, 0, len(candidates))
	var upsertErr error
	for _, cand := range candidates {
		tag, err := a.tagRepo.UpsertBySlug(ctx, cand.tag, cand.slug)
		if err != nil {
			secondaryFailed(StepTagUpsert, err, postID)
			if upsertErr == nil {
				upsertErr = eris.Wrapf(err, "upserting tag %q", cand.tag)
			}
			continue
		}
		tags = append(tags, *tag)
		ids = append(ids, tag.ID)
	}

	if err := a.postTagRepo.Assign(ctx, postID, ids); err != nil {
		secondaryFailed(StepTagAssign, err, postID)
		return tags, eris.Wrap(err, "assigning tags")
	}

	return tags, upsertErr
}
