package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"mime"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/tubefeed/pkg/domain"
)

const (
	detailKey        = "detail"
	nonFieldKey      = "non_field_errors"
	requiredMsg      = "This field is required."
	maxMultipartSize = 10 * 1024 * 1024
)

var errNotScalar = errors.New("not a scalar value")

// ValidationError is a field-keyed list of messages, rendered as the response body as is
type ValidationError map[string][]string

// Error returns fields and messages sorted by field name
func (v ValidationError) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(v[k], ", "))
	}
	return strings.Join(parts, "; ")
}

// Add appends msg to field messages
func (v ValidationError) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

// OrNil returns nil if nothing was added
func (v ValidationError) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// fieldSet is a request body decoded from JSON, multipart or urlencoded form.
// Getters record problems in errs and report whether the field was sent at all.
type fieldSet struct {
	json   map[string]json.RawMessage
	form   map[string][]string
	files  map[string][]*multipart.FileHeader
	policy *bluemonday.Policy
	errs   ValidationError
}

// parseFields reads request body according to its content type
func parseFields(r *http.Request, policy *bluemonday.Policy) (*fieldSet, error) {
	fs := &fieldSet{policy: policy, errs: ValidationError{}}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = "application/json"
	}

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartSize); err != nil {
			return nil, ValidationError{nonFieldKey: {fmt.Sprintf("Malformed multipart body: %v", err)}}
		}
		fs.form = r.MultipartForm.Value
		fs.files = r.MultipartForm.File
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, ValidationError{nonFieldKey: {fmt.Sprintf("Malformed form body: %v", err)}}
		}
		fs.form = r.PostForm
	default:
		fs.json = map[string]json.RawMessage{}
		if r.Body == nil {
			return fs, nil
		}
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&fs.json); err != nil && !errors.Is(err, io.EOF) {
			return nil, ValidationError{nonFieldKey: {fmt.Sprintf("JSON parse error - %v", err)}}
		}
	}
	return fs, nil
}

// has reports whether the field is present in the body
func (f *fieldSet) has(key string) bool {
	if f.json != nil {
		_, ok := f.json[key]
		return ok
	}
	if _, ok := f.form[key]; ok {
		return true
	}
	_, ok := f.files[key]
	return ok
}

// raw returns a scalar value as text; null and missing give ("", false)
func (f *fieldSet) raw(key string) (val string, set bool, err error) {
	if f.json != nil {
		msg, ok := f.json[key]
		if !ok || bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			return "", false, nil
		}
		var s string
		if json.Unmarshal(msg, &s) == nil {
			return s, true, nil
		}
		var n json.Number
		dec := json.NewDecoder(bytes.NewReader(msg))
		dec.UseNumber()
		if dec.Decode(&n) == nil {
			return n.String(), true, nil
		}
		return "", false, errNotScalar
	}
	vals, ok := f.form[key]
	if !ok || len(vals) == 0 {
		return "", false, nil
	}
	return vals[0], true, nil
}

// text returns a sanitized string, markup stripped
func (f *fieldSet) text(key string, required bool) string {
	val, _, err := f.raw(key)
	if err != nil {
		f.errs.Add(key, "Not a valid string.")
		return ""
	}
	val = strings.TrimSpace(html.UnescapeString(f.policy.Sanitize(val)))
	if required && val == "" {
		if f.has(key) {
			f.errs.Add(key, "This field may not be blank.")
		} else {
			f.errs.Add(key, requiredMsg)
		}
	}
	return val
}

// count returns a non-negative integer, nil for empty or null
func (f *fieldSet) count(key string, required bool) *int {
	val, set, err := f.raw(key)
	if err != nil {
		f.errs.Add(key, "A valid integer is required.")
		return nil
	}
	val = strings.TrimSpace(val)
	if !set || val == "" {
		if required {
			f.errs.Add(key, requiredMsg)
		}
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		f.errs.Add(key, "A valid integer is required.")
		return nil
	}
	if n < 0 {
		f.errs.Add(key, "Ensure this value is greater than or equal to 0.")
		return nil
	}
	return &n
}

// decimal returns a non-negative number, nil for empty or null
func (f *fieldSet) decimal(key string) *float64 {
	val, set, err := f.raw(key)
	val = strings.TrimSpace(val)
	if err == nil && (!set || val == "") {
		return nil
	}
	v, perr := strconv.ParseFloat(val, 64)
	if err != nil || perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		f.errs.Add(key, "A valid number is required.")
		return nil
	}
	if v < 0 {
		f.errs.Add(key, "Ensure this value is greater than or equal to 0.")
		return nil
	}
	return &v
}

// id returns a reference id, nil for empty or null
func (f *fieldSet) id(key string) *int64 {
	val, set, err := f.raw(key)
	val = strings.TrimSpace(val)
	if err == nil && (!set || val == "") {
		return nil
	}
	id, perr := strconv.ParseInt(val, 10, 64)
	if err != nil || perr != nil || id <= 0 {
		f.errs.Add(key, fmt.Sprintf("Incorrect type. Expected pk value, received %q.", val))
		return nil
	}
	return &id
}

func (f *fieldSet) date(key string, required bool) domain.Date {
	val := f.text(key, required)
	if val == "" {
		return domain.Date{}
	}
	d, err := domain.ParseDate(val)
	if err != nil {
		f.errs.Add(key, "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
		return domain.Date{}
	}
	return d
}

func (f *fieldSet) timing(key string, required bool) domain.TimeOfDay {
	val := f.text(key, required)
	if val == "" {
		return domain.TimeOfDay{}
	}
	t, err := domain.ParseTimeOfDay(val)
	if err != nil {
		f.errs.Add(key, "Time has wrong format. Use one of these formats instead: hh:mm[:ss].")
		return domain.TimeOfDay{}
	}
	return t
}

// file returns uploaded file header for key, if any
func (f *fieldSet) file(key string) *multipart.FileHeader {
	if fhs := f.files[key]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

// nutrients reads the nutrient fields with the given prefix, only the present ones if partial
func (f *fieldSet) nutrients(prefix string, base domain.Nutrients, partial, quantityRequired bool) domain.Nutrients {
	res := base
	if !partial || f.has(prefix+"quantity_ml") {
		res.QuantityML = f.count(prefix+"quantity_ml", quantityRequired)
	}
	if !partial || f.has(prefix+"calories") {
		res.Calories = f.count(prefix+"calories", false)
	}
	if !partial || f.has(prefix+"protein_g") {
		res.ProteinG = f.decimal(prefix + "protein_g")
	}
	if !partial || f.has(prefix+"carbs_g") {
		res.CarbsG = f.decimal(prefix + "carbs_g")
	}
	if !partial || f.has(prefix+"fat_g") {
		res.FatG = f.decimal(prefix + "fat_g")
	}
	return res
}

// pathID extracts numeric {id} path value
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}
