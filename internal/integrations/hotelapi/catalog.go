package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const dateLayout = "2006-01-02"

// ListHotels GET /hotels
func (c *Client) ListHotels(ctx context.Context) ([]Hotel, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/hotels", nil, &raw); err != nil {
		return nil, err
	}
	return decodeHotels(raw)
}

// GetHotel GET /hotels/{id}
func (c *Client) GetHotel(ctx context.Context, hotelID string) (*Hotel, error) {
	var hotel Hotel
	if err := c.doJSON(ctx, http.MethodGet, "/hotels/"+url.PathEscape(hotelID), nil, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

// ListRooms GET /hotels/{id}/rooms
func (c *Client) ListRooms(ctx context.Context, hotelID string) ([]Room, error) {
	var rooms []Room
	path := fmt.Sprintf("/hotels/%s/rooms", url.PathEscape(hotelID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom GET /hotels/{id}/rooms/{roomId}
func (c *Client) GetRoom(ctx context.Context, hotelID, roomID string) (*Room, error) {
	var room Room
	path := fmt.Sprintf("/hotels/%s/rooms/%s", url.PathEscape(hotelID), url.PathEscape(roomID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// SearchHotels GET /hotels/search?destination&checkIn&checkOut&guests
func (c *Client) SearchHotels(ctx context.Context, p SearchParams) ([]Hotel, error) {
	q := url.Values{}
	q.Set("destination", p.Destination)
	if !p.CheckIn.IsZero() {
		q.Set("checkIn", p.CheckIn.Format(dateLayout))
	}
	if !p.CheckOut.IsZero() {
		q.Set("checkOut", p.CheckOut.Format(dateLayout))
	}
	if p.Guests > 0 {
		q.Set("guests", strconv.Itoa(p.Guests))
	}

	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/hotels/search?"+q.Encode(), nil, &raw); err != nil {
		return nil, err
	}
	return decodeHotels(raw)
}

// FeaturedHotels GET /hotels/featured_hotel
func (c *Client) FeaturedHotels(ctx context.Context) ([]Hotel, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/hotels/featured_hotel", nil, &raw); err != nil {
		return nil, err
	}
	return decodeHotels(raw)
}

// FeaturedRooms GET /rooms/featured_room
func (c *Client) FeaturedRooms(ctx context.Context) ([]Room, error) {
	var rooms []Room
	if err := c.doJSON(ctx, http.MethodGet, "/rooms/featured_room", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// decodeHotels принимает как {"hotels": [...]}, так и голый массив
func decodeHotels(raw json.RawMessage) ([]Hotel, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var hotels []Hotel
		if err := json.Unmarshal(trimmed, &hotels); err != nil {
			return nil, fmt.Errorf("%w: failed to decode hotels: %v", ErrInvalidResponse, err)
		}
		return hotels, nil
	}

	var envelope struct {
		Hotels []Hotel `json:"hotels"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode hotels: %v", ErrInvalidResponse, err)
	}
	if envelope.Hotels == nil {
		return []Hotel{}, nil
	}
	return envelope.Hotels, nil
}
