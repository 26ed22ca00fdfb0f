package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/features/tracking/domain"
)

// trackingResponse mirrors the QueryTracking envelope.
type trackingResponse struct {
	Response *struct {
		Result json.RawMessage `json:"TrackingResult"`
	} `json:"QueryTrackEventsResponse"`
}

// trackingItem is one per-id tracking entry.
type trackingItem struct {
	TrackingID         *auspost.FlexString `json:"TrackingID"`
	ArticleDetails     json.RawMessage     `json:"ArticleDetails"`
	ConsignmentDetails json.RawMessage     `json:"ConsignmentDetails"`
}

// articleItem is one article entry. Optional fields are pointers so
// absence stays distinguishable from blank.
type articleItem struct {
	ArticleID              *auspost.FlexString `json:"ArticleID"`
	ProductName            *string             `json:"ProductName"`
	Status                 *string             `json:"Status"`
	EventNotification      *auspost.FlexString `json:"EventNotification"`
	OriginCountryCode      *string             `json:"OriginCountryCode"`
	OriginCountry          *string             `json:"OriginCountry"`
	DestinationCountryCode *string             `json:"DestinationCountryCode"`
	DestinationCountry     *string             `json:"DestinationCountry"`
	EventCount             int                 `json:"EventCount"`
	Events                 json.RawMessage     `json:"Events"`
}

// eventsEnvelope wraps the article's event list.
type eventsEnvelope struct {
	Event json.RawMessage `json:"Event"`
}

// eventItem is one tracking event entry.
type eventItem struct {
	EventDescription *string `json:"EventDescription"`
	EventDateTime    *string `json:"EventDateTime"`
	Location         *string `json:"Location"`
	SignerName       *string `json:"SignerName"`
}

// consignmentItem is the consignment detail block.
type consignmentItem struct {
	ConsignmentID *auspost.FlexString `json:"ConsignmentID"`
	ArticleCount  int                 `json:"ArticleCount"`
	Articles      json.RawMessage     `json:"Articles"`
}

// articlesEnvelope wraps a consignment's article list.
type articlesEnvelope struct {
	Article json.RawMessage `json:"Article"`
}

// DecodeTrackingResults decodes a QueryTracking response body. Each
// tracking entry must resolve to exactly one article; a consignment block
// is decoded when present, with no article-count constraint of its own.
func DecodeTrackingResults(body []byte) ([]domain.TrackingResult, error) {
	var resp trackingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse tracking response: %w", err)
	}

	if resp.Response == nil {
		return nil, &auspost.MalformedResponseError{Path: "QueryTrackEventsResponse"}
	}
	if len(resp.Response.Result) == 0 {
		return nil, &auspost.MalformedResponseError{Path: "QueryTrackEventsResponse.TrackingResult"}
	}

	items, err := auspost.EnsureSequence(resp.Response.Result)
	if err != nil {
		return nil, &auspost.MalformedResponseError{Path: "QueryTrackEventsResponse.TrackingResult"}
	}

	results := make([]domain.TrackingResult, 0, len(items))
	for _, raw := range items {
		var item trackingItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("failed to parse tracking entry: %w", err)
		}
		if item.TrackingID == nil {
			return nil, &auspost.MalformedResponseError{Path: "TrackingResult.TrackingID"}
		}

		articles, err := decodeArticles(item.ArticleDetails)
		if err != nil {
			return nil, err
		}
		if len(articles) != 1 {
			return nil, fmt.Errorf("%w: expected exactly one article per tracking id, got %d",
				auspost.ErrInvariantViolation, len(articles))
		}

		result := domain.TrackingResult{
			ID:      item.TrackingID.String(),
			Article: articles[0],
		}

		if len(item.ConsignmentDetails) > 0 {
			consignment, err := decodeConsignment(item.ConsignmentDetails)
			if err != nil {
				return nil, err
			}
			result.Consignment = consignment
		}

		results = append(results, result)
	}

	return results, nil
}

// decodeArticles decodes an article-details value, which may be absent, a
// bare object, or an array.
func decodeArticles(raw json.RawMessage) ([]domain.Article, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	items, err := auspost.EnsureSequence(raw)
	if err != nil {
		return nil, &auspost.MalformedResponseError{Path: "TrackingResult.ArticleDetails"}
	}

	articles := make([]domain.Article, 0, len(items))
	for _, rawItem := range items {
		article, err := decodeArticle(rawItem)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// decodeArticle decodes one article entry with its optional country pair
// and event list.
func decodeArticle(raw json.RawMessage) (domain.Article, error) {
	var item articleItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return domain.Article{}, fmt.Errorf("failed to parse article entry: %w", err)
	}
	if item.ArticleID == nil {
		return domain.Article{}, &auspost.MalformedResponseError{Path: "ArticleDetails.ArticleID"}
	}

	article := domain.Article{
		ID:          item.ArticleID.String(),
		ProductName: item.ProductName,
		Status:      item.Status,
		Events:      []domain.Event{},
	}

	if item.EventNotification != nil {
		code := item.EventNotification.String()
		article.EventNotificationCode = &code
	}

	// Country pairs are decoded only when both code and name are present.
	if item.OriginCountryCode != nil && item.OriginCountry != nil {
		article.Origin = &auspost.Country{Code: *item.OriginCountryCode, Name: *item.OriginCountry}
	}
	if item.DestinationCountryCode != nil && item.DestinationCountry != nil {
		article.Destination = &auspost.Country{Code: *item.DestinationCountryCode, Name: *item.DestinationCountry}
	}

	// The events key may be absent entirely when the count is zero.
	if item.EventCount > 0 {
		if len(item.Events) == 0 {
			return domain.Article{}, &auspost.MalformedResponseError{Path: "ArticleDetails.Events"}
		}
		events, err := decodeEvents(item.Events)
		if err != nil {
			return domain.Article{}, err
		}
		article.Events = events
	}

	return article, nil
}

// decodeEvents decodes an events envelope, tolerating an absent inner
// Event key as an empty history.
func decodeEvents(raw json.RawMessage) ([]domain.Event, error) {
	var envelope eventsEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse events envelope: %w", err)
	}
	if len(envelope.Event) == 0 {
		return []domain.Event{}, nil
	}

	items, err := auspost.EnsureSequence(envelope.Event)
	if err != nil {
		return nil, &auspost.MalformedResponseError{Path: "Events.Event"}
	}

	events := make([]domain.Event, 0, len(items))
	for _, rawItem := range items {
		var item eventItem
		if err := json.Unmarshal(rawItem, &item); err != nil {
			return nil, fmt.Errorf("failed to parse event entry: %w", err)
		}
		if item.EventDescription == nil {
			return nil, &auspost.MalformedResponseError{Path: "Event.EventDescription"}
		}
		if item.EventDateTime == nil {
			return nil, &auspost.MalformedResponseError{Path: "Event.EventDateTime"}
		}
		if item.Location == nil {
			return nil, &auspost.MalformedResponseError{Path: "Event.Location"}
		}

		timestamp, err := auspost.ParseTimestamp(*item.EventDateTime)
		if err != nil {
			return nil, err
		}

		event := domain.Event{
			Description: *item.EventDescription,
			Timestamp:   timestamp,
			Location:    *item.Location,
		}
		// Blank signer names collapse to absent.
		if item.SignerName != nil && *item.SignerName != "" {
			event.SignerName = item.SignerName
		}

		events = append(events, event)
	}

	return events, nil
}

// decodeConsignment decodes a consignment detail block and its embedded
// articles when any are reported.
func decodeConsignment(raw json.RawMessage) (*domain.Consignment, error) {
	var item consignmentItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to parse consignment entry: %w", err)
	}
	if item.ConsignmentID == nil {
		return nil, &auspost.MalformedResponseError{Path: "ConsignmentDetails.ConsignmentID"}
	}

	consignment := &domain.Consignment{
		ID:       item.ConsignmentID.String(),
		Articles: []domain.Article{},
	}

	if item.ArticleCount > 0 {
		if len(item.Articles) == 0 {
			return nil, &auspost.MalformedResponseError{Path: "ConsignmentDetails.Articles"}
		}
		var envelope articlesEnvelope
		if err := json.Unmarshal(item.Articles, &envelope); err != nil {
			return nil, fmt.Errorf("failed to parse consignment articles: %w", err)
		}
		if len(envelope.Article) > 0 {
			articles, err := decodeArticles(envelope.Article)
			if err != nil {
				return nil, err
			}
			consignment.Articles = articles
		}
	}

	return consignment, nil
}
