package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"blogger/models"
)

// blogSchema carries the persisted-field rules checked on every write.
type blogSchema struct {
	Title       string   `validate:"required,max=150"`
	Description string   `validate:"required,max=300"`
	Content     string   `validate:"required,max=20000"`
	Tags        []string `validate:"dive,max=30"`
	Type        string   `validate:"oneof=Literary Technical Other"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// The content message says 2000 while the enforced limit is 20000; clients
// match on the text, so it stays until product settles the wording.
var fieldMessages = map[string]map[string]string{
	"Title": {
		"required": "Title is required",
		"max":      "Title must be less than 150 characters",
	},
	"Description": {
		"required": "Description is required",
		"max":      "Description must be less than 300 characters",
	},
	"Content": {
		"required": "Content is required",
		"max":      "Content must be less than 2000 characters",
	},
	"Tags": {
		"max": "Each tag must be a string with max 30 characters",
	},
	"Type": {
		"oneof": "Type must be either Literary, Technical, or Other",
	},
}

// BlogValidationMessage heads every schema failure; details go in Error.Errors.
const BlogValidationMessage = "Blog validation failed"

func validateBlog(b *models.Blog) error {
	err := validate.Struct(blogSchema{
		Title:       b.Title,
		Description: b.Description,
		Content:     b.Content,
		Tags:        b.Tags,
		Type:        string(b.Type),
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewInternalError("Something went wrong while validating blog", err)
	}

	seen := make(map[string]bool, len(fieldErrs))
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := messageFor(fe)
		if seen[msg] {
			continue
		}
		seen[msg] = true
		details = append(details, msg)
	}
	return NewValidationError(BlogValidationMessage, details...)
}

func messageFor(fe validator.FieldError) string {
	field := fe.StructField()
	// dive errors come back as Tags[3]
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	if msg, ok := fieldMessages[field][fe.Tag()]; ok {
		return msg
	}
	return fe.Error()
}
