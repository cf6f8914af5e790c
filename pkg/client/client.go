// Package client is a thin wrapper over the tubefeed REST API. All errors returned are *Error
// with a Kind telling network failures, validation errors, missing records and server faults apart.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/tubefeed/pkg/domain"
	"github.com/umputun/tubefeed/pkg/tracker"
)

// Client calls the REST API
type Client struct {
	baseURL string
	client  *http.Client
}

// FeedItem is a feed item as returned by the API
type FeedItem struct {
	domain.FeedItem
	ImageURL      string `json:"image"`
	TimingDisplay string `json:"timing_display"`
}

// Summary is the daily aggregate with the next upcoming feed
type Summary struct {
	Date domain.Date `json:"date"`
	tracker.Summary
	Next *NextFeed `json:"next"`
}

// NextFeed is the upcoming item with its scheduled instant
type NextFeed struct {
	FeedItem
	At time.Time `json:"at"`
}

// Image is a file to upload with a feed item
type Image struct {
	Name    string
	Content io.Reader
}

// ItemRequest is the editable part of a feed item for create and update calls.
// Image, if set, is uploaded with multipart encoding; ClearImage removes the current image.
type ItemRequest struct {
	Item       domain.FeedItem
	Image      *Image
	ClearImage bool
}

// New makes a client for API at baseURL, e.g. http://localhost:8080
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/api/v1",
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// FeedItems returns items of the date ordered by timing, the server fills an empty date from the schedule template
func (c *Client) FeedItems(ctx context.Context, date domain.Date) ([]FeedItem, error) {
	if date.IsZero() {
		return nil, preconditionErr("date is required")
	}
	var res []FeedItem
	if err := c.do(ctx, http.MethodGet, "/feed-items?date="+url.QueryEscape(date.String()), nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// FeedItem returns a single item
func (c *Client) FeedItem(ctx context.Context, id int64) (*FeedItem, error) {
	if id <= 0 {
		return nil, preconditionErr("feed item id is required")
	}
	var res FeedItem
	if err := c.do(ctx, http.MethodGet, itemPath(id, ""), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Summary returns nutrition totals and the next feed for the date, computed by the server
func (c *Client) Summary(ctx context.Context, date domain.Date) (*Summary, error) {
	if date.IsZero() {
		return nil, preconditionErr("date is required")
	}
	var res Summary
	if err := c.do(ctx, http.MethodGet, "/summary?date="+url.QueryEscape(date.String()), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateFeedItem adds an ad-hoc item
func (c *Client) CreateFeedItem(ctx context.Context, req ItemRequest) (*FeedItem, error) {
	if err := checkItem(req.Item); err != nil {
		return nil, err
	}
	var res FeedItem
	if err := c.sendItem(ctx, http.MethodPost, "/feed-items", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateFeedItem replaces editable fields of an item, status is not changed
func (c *Client) UpdateFeedItem(ctx context.Context, id int64, req ItemRequest) (*FeedItem, error) {
	if id <= 0 {
		return nil, preconditionErr("feed item id is required")
	}
	if err := checkItem(req.Item); err != nil {
		return nil, err
	}
	var res FeedItem
	if err := c.sendItem(ctx, http.MethodPut, itemPath(id, ""), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PatchFeedItem changes only the given fields, keyed by their API names
func (c *Client) PatchFeedItem(ctx context.Context, id int64, fields map[string]any) (*FeedItem, error) {
	if id <= 0 {
		return nil, preconditionErr("feed item id is required")
	}
	var res FeedItem
	if err := c.do(ctx, http.MethodPatch, itemPath(id, ""), fields, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteFeedItem removes an item
func (c *Client) DeleteFeedItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return preconditionErr("feed item id is required")
	}
	return c.do(ctx, http.MethodDelete, itemPath(id, ""), nil, nil)
}

// SetStatus moves an item to status and returns the updated item
func (c *Client) SetStatus(ctx context.Context, id int64, status domain.Status) (*FeedItem, error) {
	if id <= 0 {
		return nil, preconditionErr("feed item id is required")
	}
	var action string
	switch status {
	case domain.StatusAdministered:
		action = "mark-administered"
	case domain.StatusSkipped:
		action = "mark-skipped"
	case domain.StatusPending:
		action = "mark-pending"
	default:
		return nil, preconditionErr("unknown status %q", status)
	}
	var res FeedItem
	if err := c.do(ctx, http.MethodPost, itemPath(id, action), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MarkAdministered records the item as given now
func (c *Client) MarkAdministered(ctx context.Context, id int64) (*FeedItem, error) {
	return c.SetStatus(ctx, id, domain.StatusAdministered)
}

// MarkSkipped records the item as skipped
func (c *Client) MarkSkipped(ctx context.Context, id int64) (*FeedItem, error) {
	return c.SetStatus(ctx, id, domain.StatusSkipped)
}

// MarkPending resets the item
func (c *Client) MarkPending(ctx context.Context, id int64) (*FeedItem, error) {
	return c.SetStatus(ctx, id, domain.StatusPending)
}

// Formulas lists the food formula library
func (c *Client) Formulas(ctx context.Context) ([]domain.FoodFormula, error) {
	var res []domain.FoodFormula
	if err := c.do(ctx, http.MethodGet, "/food-formulas", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Formula returns a single formula
func (c *Client) Formula(ctx context.Context, id int64) (*domain.FoodFormula, error) {
	if id <= 0 {
		return nil, preconditionErr("formula id is required")
	}
	var res domain.FoodFormula
	if err := c.do(ctx, http.MethodGet, "/food-formulas/"+strconv.FormatInt(id, 10), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateFormula adds a formula to the library
func (c *Client) CreateFormula(ctx context.Context, f domain.FoodFormula) (*domain.FoodFormula, error) {
	if strings.TrimSpace(f.Name) == "" {
		return nil, preconditionErr("formula name is required")
	}
	var res domain.FoodFormula
	if err := c.do(ctx, http.MethodPost, "/food-formulas", formulaBody(f), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateFormula replaces formula fields
func (c *Client) UpdateFormula(ctx context.Context, f domain.FoodFormula) (*domain.FoodFormula, error) {
	if f.ID <= 0 {
		return nil, preconditionErr("formula id is required")
	}
	if strings.TrimSpace(f.Name) == "" {
		return nil, preconditionErr("formula name is required")
	}
	var res domain.FoodFormula
	if err := c.do(ctx, http.MethodPut, "/food-formulas/"+strconv.FormatInt(f.ID, 10), formulaBody(f), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteFormula removes a formula together with schedule template entries using it
func (c *Client) DeleteFormula(ctx context.Context, id int64) error {
	if id <= 0 {
		return preconditionErr("formula id is required")
	}
	return c.do(ctx, http.MethodDelete, "/food-formulas/"+strconv.FormatInt(id, 10), nil, nil)
}

// Templates lists the schedule template ordered by timing
func (c *Client) Templates(ctx context.Context) ([]domain.ScheduleTemplateEntry, error) {
	var res []domain.ScheduleTemplateEntry
	if err := c.do(ctx, http.MethodGet, "/schedule-templates", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Template returns a single schedule template entry
func (c *Client) Template(ctx context.Context, id int64) (*domain.ScheduleTemplateEntry, error) {
	if id <= 0 {
		return nil, preconditionErr("template entry id is required")
	}
	var res domain.ScheduleTemplateEntry
	if err := c.do(ctx, http.MethodGet, "/schedule-templates/"+strconv.FormatInt(id, 10), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateTemplate adds a schedule template entry
func (c *Client) CreateTemplate(ctx context.Context, e domain.ScheduleTemplateEntry) (*domain.ScheduleTemplateEntry, error) {
	if err := checkTemplate(e); err != nil {
		return nil, err
	}
	var res domain.ScheduleTemplateEntry
	if err := c.do(ctx, http.MethodPost, "/schedule-templates", templateBody(e), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateTemplate replaces schedule template entry fields
func (c *Client) UpdateTemplate(ctx context.Context, e domain.ScheduleTemplateEntry) (*domain.ScheduleTemplateEntry, error) {
	if e.ID <= 0 {
		return nil, preconditionErr("template entry id is required")
	}
	if err := checkTemplate(e); err != nil {
		return nil, err
	}
	var res domain.ScheduleTemplateEntry
	path := "/schedule-templates/" + strconv.FormatInt(e.ID, 10)
	if err := c.do(ctx, http.MethodPut, path, templateBody(e), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteTemplate removes a schedule template entry and items generated from it
func (c *Client) DeleteTemplate(ctx context.Context, id int64) error {
	if id <= 0 {
		return preconditionErr("template entry id is required")
	}
	return c.do(ctx, http.MethodDelete, "/schedule-templates/"+strconv.FormatInt(id, 10), nil, nil)
}

// do sends JSON body, if any, and decodes JSON response into res, if any
func (c *Client) do(ctx context.Context, method, path string, body, res any) error {
	var rdr io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return preconditionErr("can't encode request: %v", err)
		}
		rdr = bytes.NewReader(data)
	}
	return c.send(ctx, method, path, "application/json", rdr, res)
}

// sendItem picks JSON or multipart encoding depending on whether an image is attached
func (c *Client) sendItem(ctx context.Context, method, path string, req ItemRequest, res any) error {
	fields := itemBody(req.Item)
	if req.ClearImage {
		fields["image"] = nil
	}
	if req.Image == nil {
		return c.do(ctx, method, path, fields, res)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, formValue(v)); err != nil {
			return preconditionErr("can't encode field %s: %v", k, err)
		}
	}
	fw, err := mw.CreateFormFile("image", req.Image.Name)
	if err != nil {
		return preconditionErr("can't encode image: %v", err)
	}
	if _, err := io.Copy(fw, req.Image.Content); err != nil {
		return preconditionErr("can't read image %s: %v", req.Image.Name, err)
	}
	if err := mw.Close(); err != nil {
		return preconditionErr("can't encode request: %v", err)
	}
	return c.send(ctx, method, path, mw.FormDataContentType(), &buf, res)
}

func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader, res any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return preconditionErr("create request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: fmt.Errorf("%s %s: %w", method, path, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: fmt.Errorf("read response of %s %s: %w", method, path, err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp.StatusCode, data)
	}
	if res == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(data, res); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Msg: "malformed response", Err: err}
	}
	return nil
}

func itemPath(id int64, action string) string {
	res := "/feed-items/" + strconv.FormatInt(id, 10)
	if action != "" {
		res += "/" + action
	}
	return res
}

func checkItem(item domain.FeedItem) error {
	var missing []string
	if item.ScheduledDate.IsZero() {
		missing = append(missing, "scheduled_date")
	}
	if strings.TrimSpace(item.FoodName) == "" {
		missing = append(missing, "food_name")
	}
	if item.QuantityML == nil {
		missing = append(missing, "quantity_ml")
	}
	if len(missing) > 0 {
		return preconditionErr("required fields missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

func checkTemplate(e domain.ScheduleTemplateEntry) error {
	if e.FoodFormulaID == nil && strings.TrimSpace(e.CustomFoodName) == "" {
		return preconditionErr("either a food formula or a custom food name is required")
	}
	if e.QuantityML == nil {
		return preconditionErr("required fields missing: quantity_ml")
	}
	return nil
}

func nutrientFields(prefix string, n domain.Nutrients, fields map[string]any) {
	fields[prefix+"quantity_ml"] = n.QuantityML
	fields[prefix+"calories"] = n.Calories
	fields[prefix+"protein_g"] = n.ProteinG
	fields[prefix+"carbs_g"] = n.CarbsG
	fields[prefix+"fat_g"] = n.FatG
}

func itemBody(item domain.FeedItem) map[string]any {
	fields := map[string]any{
		"scheduled_date": item.ScheduledDate.String(),
		"timing":         item.Timing.String(),
		"food_name":      item.FoodName,
		"description":    item.Description,
		"source_formula": item.SourceFormulaID,
	}
	nutrientFields("", item.Nutrients, fields)
	return fields
}

func formulaBody(f domain.FoodFormula) map[string]any {
	fields := map[string]any{"name": f.Name, "default_description": f.DefaultDescription}
	nutrientFields("default_", f.Defaults(), fields)
	return fields
}

func templateBody(e domain.ScheduleTemplateEntry) map[string]any {
	fields := map[string]any{
		"timing":           e.Timing.String(),
		"food_formula":     e.FoodFormulaID,
		"custom_food_name": e.CustomFoodName,
		"description":      e.Description,
	}
	nutrientFields("", e.Nutrients, fields)
	return fields
}

// formValue renders a JSON body value for multipart encoding, nil becomes empty
func formValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *int:
		if val == nil {
			return ""
		}
		return strconv.Itoa(*val)
	case *int64:
		if val == nil {
			return ""
		}
		return strconv.FormatInt(*val, 10)
	case *float64:
		if val == nil {
			return ""
		}
		return strconv.FormatFloat(*val, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
