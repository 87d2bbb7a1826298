package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wqy7711/e-novel-api/internal/service"
)

type TranslateHandler struct {
	service service.TranslationService
}

func NewTranslateHandler(service service.TranslationService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/novels/:novelId/translation", h.Translate)
}

type translationMetadata struct {
	SourceLanguage   string   `json:"sourceLanguage"`
	TargetLanguage   string   `json:"targetLanguage"`
	TranslatedFields []string `json:"translatedFields"`
}

// translateNovelResponse merges the novel's attributes with the
// translated_{field} keys produced for it.
type translateNovelResponse struct {
	novelResponse
	TranslatedTitle       *string             `json:"translated_title,omitempty"`
	TranslatedAuthor      *string             `json:"translated_author,omitempty"`
	TranslatedDescription *string             `json:"translated_description,omitempty"`
	TranslatedGenre       *string             `json:"translated_genre,omitempty"`
	Translation           translationMetadata `json:"translation"`
}

// Translate returns a novel with selected fields translated.
// @Summary Translate novel fields
// @Description Translate selected text fields of a novel into the target language, reusing cached translations where available
// @Tags novels
// @Produce json
// @Param novelId path string true "Novel ID"
// @Param language query string true "Target language code"
// @Param fields query string false "Comma-separated fields to translate (default: description)"
// @Success 200 {object} translateNovelResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /novels/{novelId}/translation [get]
func (h *TranslateHandler) Translate(c echo.Context) error {
	result, err := h.service.Translate(
		c.Request().Context(),
		c.Param("novelId"),
		c.QueryParam("language"),
		c.QueryParam("fields"),
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslateResponse(result))
}

func toTranslateResponse(result service.TranslationResult) translateNovelResponse {
	response := translateNovelResponse{
		novelResponse: toNovelResponse(result.Novel),
		Translation: translationMetadata{
			SourceLanguage:   result.SourceLanguage,
			TargetLanguage:   result.TargetLanguage,
			TranslatedFields: result.TranslatedFields,
		},
	}
	if response.Translation.TranslatedFields == nil {
		response.Translation.TranslatedFields = []string{}
	}

	for _, outcome := range result.Outcomes {
		text := outcome.Text
		switch outcome.Field {
		case "title":
			response.TranslatedTitle = &text
		case "author":
			response.TranslatedAuthor = &text
		case "description":
			response.TranslatedDescription = &text
		case "genre":
			response.TranslatedGenre = &text
		}
	}
	return response
}
