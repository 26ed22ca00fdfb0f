package adapter

import (
	"errors"
	"testing"
	"time"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeTrackingResults_SingleArticle verifies a consignment-free
// result with a full event history.
func TestDecodeTrackingResults_SingleArticle(t *testing.T) {
	body := []byte(`{
		"QueryTrackEventsResponse": {
			"TrackingResult": {
				"TrackingID": "1234",
				"ArticleDetails": {
					"ArticleID": "1234",
					"ProductName": "eParcel",
					"Status": "Delivered",
					"EventNotification": "01",
					"OriginCountryCode": "AU",
					"OriginCountry": "Australia",
					"EventCount": 2,
					"Events": {
						"Event": [
							{
								"EventDescription": "Delivered",
								"EventDateTime": "2011-07-28T10:12:00+10:00",
								"Location": "Melbourne",
								"SignerName": "A POST"
							},
							{
								"EventDescription": "In transit",
								"EventDateTime": "2011-07-27T08:00:00+10:00",
								"Location": "Sydney",
								"SignerName": ""
							}
						]
					}
				}
			}
		}
	}`)

	results, err := DecodeTrackingResults(body)
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "1234", result.ID)
	assert.Nil(t, result.Consignment)

	article := result.Article
	assert.Equal(t, "1234", article.ID)
	require.NotNil(t, article.ProductName)
	assert.Equal(t, "eParcel", *article.ProductName)
	require.NotNil(t, article.Status)
	assert.Equal(t, "Delivered", *article.Status)
	require.NotNil(t, article.EventNotificationCode)
	assert.Equal(t, "01", *article.EventNotificationCode)
	require.NotNil(t, article.Origin)
	assert.Equal(t, auspost.Country{Code: "AU", Name: "Australia"}, *article.Origin)
	assert.Nil(t, article.Destination)

	require.Len(t, article.Events, 2)
	assert.Equal(t, "Delivered", article.Events[0].Description)
	assert.Equal(t, time.Date(2011, 7, 28, 0, 12, 0, 0, time.UTC), article.Events[0].Timestamp)
	assert.Equal(t, "Melbourne", article.Events[0].Location)
	require.NotNil(t, article.Events[0].SignerName)
	assert.Equal(t, "A POST", *article.Events[0].SignerName)

	// A blank signer collapses to absent.
	assert.Nil(t, article.Events[1].SignerName)
}

// TestDecodeTrackingResults_Multiple verifies array form and numeric ids.
func TestDecodeTrackingResults_Multiple(t *testing.T) {
	body := []byte(`{
		"QueryTrackEventsResponse": {
			"TrackingResult": [
				{
					"TrackingID": 1234,
					"ArticleDetails": {"ArticleID": 1234, "EventCount": 0}
				},
				{
					"TrackingID": "5678",
					"ArticleDetails": {"ArticleID": "5678", "EventCount": 0}
				}
			]
		}
	}`)

	results, err := DecodeTrackingResults(body)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "1234", results[0].ID)
	assert.Equal(t, "5678", results[1].ID)

	// Optional fields stay absent, a zero event count yields an empty history.
	assert.Nil(t, results[0].Article.ProductName)
	assert.Nil(t, results[0].Article.Status)
	assert.Nil(t, results[0].Article.Origin)
	assert.Empty(t, results[0].Article.Events)
}

// TestDecodeTrackingResults_ArticleCountInvariant verifies every tracking
// entry resolves to exactly one article.
func TestDecodeTrackingResults_ArticleCountInvariant(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			"NoArticles",
			`{"QueryTrackEventsResponse": {"TrackingResult": {"TrackingID": "1234"}}}`,
		},
		{
			"TwoArticles",
			`{"QueryTrackEventsResponse": {"TrackingResult": {
				"TrackingID": "1234",
				"ArticleDetails": [
					{"ArticleID": "1", "EventCount": 0},
					{"ArticleID": "2", "EventCount": 0}
				]
			}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTrackingResults([]byte(tt.body))
			assert.True(t, errors.Is(err, auspost.ErrInvariantViolation))
		})
	}
}

// TestDecodeTrackingResults_Consignment verifies the consignment block and
// its embedded article list decode alongside the main article.
func TestDecodeTrackingResults_Consignment(t *testing.T) {
	body := []byte(`{
		"QueryTrackEventsResponse": {
			"TrackingResult": {
				"TrackingID": "CON1",
				"ArticleDetails": {"ArticleID": "CON1", "EventCount": 0},
				"ConsignmentDetails": {
					"ConsignmentID": "CON1",
					"ArticleCount": 2,
					"Articles": {
						"Article": [
							{"ArticleID": "A1", "EventCount": 0},
							{"ArticleID": "A2", "EventCount": 0}
						]
					}
				}
			}
		}
	}`)

	results, err := DecodeTrackingResults(body)
	require.NoError(t, err)
	require.Len(t, results, 1)

	consignment := results[0].Consignment
	require.NotNil(t, consignment)
	assert.Equal(t, "CON1", consignment.ID)
	require.Len(t, consignment.Articles, 2)
	assert.Equal(t, "A1", consignment.Articles[0].ID)
	assert.Equal(t, "A2", consignment.Articles[1].ID)
}

// TestDecodeTrackingResults_EmptyEventsEnvelope verifies an envelope with
// no inner Event key decodes as an empty history.
func TestDecodeTrackingResults_EmptyEventsEnvelope(t *testing.T) {
	body := []byte(`{
		"QueryTrackEventsResponse": {
			"TrackingResult": {
				"TrackingID": "1234",
				"ArticleDetails": {"ArticleID": "1234", "EventCount": 1, "Events": {}}
			}
		}
	}`)

	results, err := DecodeTrackingResults(body)
	require.NoError(t, err)
	assert.Empty(t, results[0].Article.Events)
}

// TestDecodeTrackingResults_Malformed verifies the expected path is reported.
func TestDecodeTrackingResults_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPath string
	}{
		{"MissingEnvelope", `{}`, "QueryTrackEventsResponse"},
		{"MissingResult", `{"QueryTrackEventsResponse": {}}`, "QueryTrackEventsResponse.TrackingResult"},
		{
			"MissingTrackingID",
			`{"QueryTrackEventsResponse": {"TrackingResult": {"ArticleDetails": {"ArticleID": "1", "EventCount": 0}}}}`,
			"TrackingResult.TrackingID",
		},
		{
			"MissingEventsWithCount",
			`{"QueryTrackEventsResponse": {"TrackingResult": {"TrackingID": "1", "ArticleDetails": {"ArticleID": "1", "EventCount": 2}}}}`,
			"ArticleDetails.Events",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTrackingResults([]byte(tt.body))
			require.Error(t, err)

			var malformed *auspost.MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.wantPath, malformed.Path)
		})
	}
}
