package http

import (
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
)

func formatTime(t time.Time) string { return t.UTC().Format(blogsdk.TimeFormat) }

func pageView[T, U any](p domain.Page[T], fn func(T) U) blogsdk.Page[U] {
	mapped := domain.MapPage(p, fn)
	return blogsdk.Page[U]{
		PagesCount: mapped.PagesCount(),
		Page:       mapped.PageNumber,
		PageSize:   mapped.PageSize,
		TotalCount: mapped.TotalCount,
		Items:      mapped.Items,
	}
}

func userView(u domain.User) blogsdk.UserView {
	return blogsdk.UserView{
		ID:        u.ID,
		Login:     u.Login,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func deviceView(s domain.Session) blogsdk.DeviceView {
	return blogsdk.DeviceView{
		IP:             s.IP,
		Title:          s.DeviceName,
		LastActiveDate: formatTime(s.IssuedAt),
		DeviceID:       s.DeviceID,
	}
}

func blogView(b domain.Blog) blogsdk.BlogView {
	return blogsdk.BlogView{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		WebsiteURL:   b.WebsiteURL,
		CreatedAt:    formatTime(b.CreatedAt),
		IsMembership: b.IsMembership,
	}
}

func likesInfo(s domain.LikesSummary) blogsdk.LikesInfo {
	status := string(s.MyStatus)
	if status == "" {
		status = blogsdk.LikeStatusNone
	}
	return blogsdk.LikesInfo{
		LikesCount:    s.Likes,
		DislikesCount: s.Dislikes,
		MyStatus:      status,
	}
}

func postView(p service.PostWithLikes) blogsdk.PostView {
	newest := make([]blogsdk.LikeDetails, 0, len(p.Likes.Newest))
	for _, d := range p.Likes.Newest {
		newest = append(newest, blogsdk.LikeDetails{
			AddedAt: formatTime(d.AddedAt),
			UserID:  d.UserID,
			Login:   d.UserLogin,
		})
	}
	return blogsdk.PostView{
		ID:               p.Post.ID,
		Title:            p.Post.Title,
		ShortDescription: p.Post.ShortDescription,
		Content:          p.Post.Content,
		BlogID:           p.Post.BlogID,
		BlogName:         p.Post.BlogName,
		CreatedAt:        formatTime(p.Post.CreatedAt),
		ExtendedLikesInfo: blogsdk.ExtendedLikesInfo{
			LikesInfo:   likesInfo(p.Likes),
			NewestLikes: newest,
		},
	}
}

func commentView(c service.CommentWithLikes) blogsdk.CommentView {
	return blogsdk.CommentView{
		ID:      c.Comment.ID,
		Content: c.Comment.Content,
		CommentatorInfo: blogsdk.CommentatorInfo{
			UserID:    c.Comment.UserID,
			UserLogin: c.Comment.UserLogin,
		},
		CreatedAt: formatTime(c.Comment.CreatedAt),
		LikesInfo: likesInfo(c.Likes),
	}
}
