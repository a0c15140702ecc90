package service

import (
	"context"
	"strings"

	"go-cms-app/internal/data"
)

// paragraphMarker is the literal two-character sequence the admin types into
// a profile detail field to start a new paragraph.
const paragraphMarker = "/n"

// SiteReader defines the interface for the site-wide display records.
type SiteReader interface {
	PageInformation(ctx context.Context) (*data.PageInformation, error)
	ContactInfos(ctx context.Context) ([]*data.ContactInfo, error)
	Categories(ctx context.Context) ([]*data.Category, error)
	ProfileAbouts(ctx context.Context) ([]*data.ProfileAbout, error)
}

// LatestVideoReader supplies the recent videos shown on the home page.
type LatestVideoReader interface {
	Latest(ctx context.Context, n int) ([]*data.Video, error)
}

// HomePage is the view-model of the home route.
type HomePage struct {
	Info         *data.PageInformation
	ContactInfos []*data.ContactInfo
	Categories   []*data.Category
	Videos       []*data.Video
}

// ProfileEntry is one profile section with its detail text already split
// into display paragraphs.
type ProfileEntry struct {
	Title      string
	Paragraphs []string
}

// SiteServicer defines the interface for the read-only public pages.
type SiteServicer interface {
	HomePage(ctx context.Context) (*HomePage, error)
	ProfileEntries(ctx context.Context) ([]ProfileEntry, error)
}

// SiteService assembles the read-only public pages.
type SiteService struct {
	site   SiteReader
	videos LatestVideoReader
}

var _ SiteServicer = (*SiteService)(nil)

// NewSiteService creates a new SiteService.
func NewSiteService(site SiteReader, videos LatestVideoReader) *SiteService {
	return &SiteService{site: site, videos: videos}
}

// HomePage loads everything the home template needs: the page information
// row, all contact details, all categories and the four latest videos.
func (s *SiteService) HomePage(ctx context.Context) (*HomePage, error) {
	info, err := s.site.PageInformation(ctx)
	if err != nil {
		return nil, err
	}
	contactInfos, err := s.site.ContactInfos(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.site.Categories(ctx)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.Latest(ctx, homeVideoCount)
	if err != nil {
		return nil, err
	}
	return &HomePage{
		Info:         info,
		ContactInfos: contactInfos,
		Categories:   categories,
		Videos:       videos,
	}, nil
}

// ProfileEntries returns every profile section with its detail split on the
// paragraph marker, in stored order.
func (s *SiteService) ProfileEntries(ctx context.Context) ([]ProfileEntry, error) {
	profiles, err := s.site.ProfileAbouts(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]ProfileEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, ProfileEntry{
			Title:      p.Title,
			Paragraphs: strings.Split(p.Detail, paragraphMarker),
		})
	}
	return entries, nil
}
