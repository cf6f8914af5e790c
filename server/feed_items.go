package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/tubefeed/pkg/domain"
	"github.com/umputun/tubefeed/pkg/tracker"
)

// itemView is a feed item as returned by the API, with image url and human readable timing
type itemView struct {
	domain.FeedItem
	Image         *string `json:"image"`
	TimingDisplay string  `json:"timing_display"`
}

// summaryView is the daily aggregate with the next upcoming feed, if any
type summaryView struct {
	Date domain.Date `json:"date"`
	tracker.Summary
	Next *nextView `json:"next"`
}

type nextView struct {
	itemView
	At time.Time `json:"at"`
}

func newItemView(item domain.FeedItem) itemView {
	res := itemView{FeedItem: item, TimingDisplay: item.Timing.Display()}
	if item.Image != "" {
		url := mediaPrefix + item.Image
		res.Image = &url
	}
	return res
}

// GET /api/v1/feed-items?date=YYYY-MM-DD - items of the day, generated from the schedule template if the day is empty
func (s *Server) listFeedItemsHandler(w http.ResponseWriter, r *http.Request) {
	param := r.URL.Query().Get("date")
	if param == "" {
		renderJSON(w, r, http.StatusOK, []itemView{})
		return
	}
	date, err := domain.ParseDate(param)
	if err != nil {
		renderJSON(w, r, http.StatusBadRequest, ValidationError{"date": {"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."}})
		return
	}

	items, err := s.items.ListByDate(r.Context(), date)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	res := make([]itemView, 0, len(items))
	for _, item := range items {
		res = append(res, newItemView(item))
	}
	renderJSON(w, r, http.StatusOK, res)
}

// GET /api/v1/summary?date=YYYY-MM-DD - nutrition totals and next pending feed of the day
func (s *Server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	param := r.URL.Query().Get("date")
	if param == "" {
		renderJSON(w, r, http.StatusBadRequest, ValidationError{"date": {requiredMsg}})
		return
	}
	date, err := domain.ParseDate(param)
	if err != nil {
		renderJSON(w, r, http.StatusBadRequest, ValidationError{"date": {"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."}})
		return
	}

	items, err := s.items.ListByDate(r.Context(), date)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}

	res := summaryView{Date: date, Summary: tracker.Summarize(items)}
	if next, ok := tracker.NextFeed(items, date, s.now().In(s.config.GetLocation())); ok {
		res.Next = &nextView{itemView: newItemView(next.Item), At: next.At}
	}
	renderJSON(w, r, http.StatusOK, res)
}

// GET /api/v1/feed-items/{id}
func (s *Server) getFeedItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	item, err := s.items.Get(r.Context(), id)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	renderJSON(w, r, http.StatusOK, newItemView(*item))
}

// POST /api/v1/feed-items - ad-hoc item, JSON or multipart with an image file
func (s *Server) createFeedItemHandler(w http.ResponseWriter, r *http.Request) {
	fs, err := parseFields(r, s.policy)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}

	item := domain.FeedItem{Status: domain.StatusPending}
	s.readItemFields(fs, &item, false)
	if err := fs.errs.OrNil(); err != nil {
		renderFailure(w, r, err, "")
		return
	}

	upload, err := s.saveUpload(fs)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	item.Image = upload

	if err := s.items.Create(r.Context(), &item); err != nil {
		s.dropImage(upload)
		renderFailure(w, r, err, "source_formula")
		return
	}
	renderJSON(w, r, http.StatusCreated, newItemView(item))
}

// PUT /api/v1/feed-items/{id}
func (s *Server) updateFeedItemHandler(w http.ResponseWriter, r *http.Request) {
	s.modifyFeedItem(w, r, false)
}

// PATCH /api/v1/feed-items/{id}
func (s *Server) patchFeedItemHandler(w http.ResponseWriter, r *http.Request) {
	s.modifyFeedItem(w, r, true)
}

// modifyFeedItem updates content fields of an item. Status is changed only with the mark-* endpoints.
// An image file replaces the current image, an empty image field removes it.
func (s *Server) modifyFeedItem(w http.ResponseWriter, r *http.Request, partial bool) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	fs, err := parseFields(r, s.policy)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}

	item, err := s.items.Get(r.Context(), id)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	oldImage := item.Image

	s.readItemFields(fs, item, partial)
	clearImage := s.imageCleared(fs)
	if err := fs.errs.OrNil(); err != nil {
		renderFailure(w, r, err, "")
		return
	}

	upload, err := s.saveUpload(fs)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	switch {
	case upload != "":
		item.Image = upload
	case clearImage:
		item.Image = ""
	}

	if err := s.items.Update(r.Context(), item); err != nil {
		s.dropImage(upload)
		renderFailure(w, r, err, "source_formula")
		return
	}
	if oldImage != "" && oldImage != item.Image {
		s.dropImage(oldImage)
	}
	renderJSON(w, r, http.StatusOK, newItemView(*item))
}

// DELETE /api/v1/feed-items/{id}
func (s *Server) deleteFeedItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	item, err := s.items.Get(r.Context(), id)
	if err != nil {
		renderFailure(w, r, err, "")
		return
	}
	if err := s.items.Delete(r.Context(), id); err != nil {
		renderFailure(w, r, err, "")
		return
	}
	s.dropImage(item.Image)
	w.WriteHeader(http.StatusNoContent)
}

// statusChangeHandler makes handler for POST /api/v1/feed-items/{id}/mark-*, no body expected
func (s *Server) statusChangeHandler(to domain.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		item, err := s.items.SetStatus(r.Context(), id, to, s.now())
		if err != nil {
			renderFailure(w, r, err, "")
			return
		}
		lgr.Printf("[DEBUG] feed item %d marked %s", id, to)
		renderJSON(w, r, http.StatusOK, newItemView(*item))
	}
}

// readItemFields copies editable fields from the request into item, only present ones if partial
func (s *Server) readItemFields(fs *fieldSet, item *domain.FeedItem, partial bool) {
	if !partial || fs.has("scheduled_date") {
		item.ScheduledDate = fs.date("scheduled_date", true)
	}
	if !partial || fs.has("timing") {
		item.Timing = fs.timing("timing", true)
	}
	if !partial || fs.has("food_name") {
		item.FoodName = fs.text("food_name", true)
	}
	item.Nutrients = fs.nutrients("", item.Nutrients, partial, true)
	if !partial || fs.has("description") {
		item.Description = fs.text("description", false)
	}
	if !partial || fs.has("source_formula") {
		item.SourceFormulaID = fs.id("source_formula")
	}
}

// imageCleared reports whether request asks to remove the image, i.e. sent an empty image value
func (s *Server) imageCleared(fs *fieldSet) bool {
	if !fs.has("image") || fs.file("image") != nil {
		return false
	}
	val, set, err := fs.raw("image")
	if err != nil || (set && val != "") {
		fs.errs.Add("image", "The submitted data was not a file. Check the encoding type on the form.")
		return false
	}
	return true
}

// saveUpload stores the uploaded image file, if any, and returns its name
func (s *Server) saveUpload(fs *fieldSet) (string, error) {
	fh := fs.file("image")
	if fh == nil {
		return "", nil
	}
	if s.images == nil {
		return "", ValidationError{"image": {"Image uploads are disabled."}}
	}
	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	name, err := s.images.Save(file, fh.Filename)
	if err != nil {
		return "", fmt.Errorf("save uploaded image %q: %w", fh.Filename, err)
	}
	return name, nil
}

// dropImage removes image file, failures only logged
func (s *Server) dropImage(name string) {
	if name == "" || s.images == nil {
		return
	}
	if err := s.images.Remove(name); err != nil {
		lgr.Printf("[WARN] can't remove image %s: %v", name, err)
	}
}
