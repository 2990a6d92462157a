package dto

import (
	"net/url"

	"subrewriter/internal/domain/models"
)

// Request
type (
	ConvertRequest struct {
		Source  string `json:"source"`
		Text    string `json:"text"`
		Host    string `json:"host"`
		ProxyIP string `json:"proxyip"`
		Port    string `json:"port"`
	}
)

// Response
type (
	ConvertResponse struct {
		Links []string `json:"links"`
		Count int      `json:"count"`
	}

	// SourceResponse omits the upstream URL, which often embeds an access token.
	SourceResponse struct {
		Name string `json:"name"`
	}
)

// Request → Domain
func (r ConvertRequest) ToDomain() models.ConvertRequest {
	return models.ConvertRequest{
		Source:     r.Source,
		Text:       r.Text,
		TargetHost: r.Host,
		ProxyIP:    r.ProxyIP,
		Port:       r.Port,
	}
}

func ConvertRequestFromQuery(q url.Values) models.ConvertRequest {
	return models.ConvertRequest{
		Source:     q.Get("source"),
		TargetHost: q.Get("host"),
		ProxyIP:    q.Get("proxyip"),
		Port:       q.Get("port"),
	}
}

// Domain → Response
func ConvertResponseFromDomain(res models.ConvertResult) ConvertResponse {
	return ConvertResponse{
		Links: res.Links,
		Count: len(res.Links),
	}
}

func SourcesResponseFromDomain(sources []models.Source) []SourceResponse {
	resp := make([]SourceResponse, len(sources))
	for i, src := range sources {
		resp[i] = SourceResponse{Name: src.Name}
	}
	return resp
}
