package rest

import (
	"encoding/json"
	"fmt"

	"github.com/DanielPopoola/bambora-gateway/internal/api"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
)

func ToAPIResult(resp *gateway.Response) api.GatewayResult {
	result := api.GatewayResult{
		Success: resp.Success,
		Message: resp.Message,
		Raw:     resp.Raw,
	}
	if auth := resp.Authorization(); auth != "" {
		result.Metadata.Authorization = &auth
	}
	if code := resp.ErrorCode(); code != "" {
		result.Metadata.ErrorCode = &code
	}
	return result
}

func ToAPITransaction(e *journal.Entry) (api.Transaction, error) {
	tx := api.Transaction{
		Id:        e.ID,
		Operation: e.Operation,
		Amount:    e.Amount,
		Success:   e.Success,
		Message:   e.Message,
		CreatedAt: e.CreatedAt.UTC(),
	}

	if e.Authorization != "" {
		tx.Authorization = &e.Authorization
	}
	if e.ErrorCode != "" {
		tx.ErrorCode = &e.ErrorCode
	}
	if len(e.Raw) > 0 {
		var raw map[string]interface{}
		if err := json.Unmarshal(e.Raw, &raw); err != nil {
			return api.Transaction{}, fmt.Errorf("failed to decode raw response of entry '%s': %w", e.ID, err)
		}
		tx.Raw = &raw
	}

	return tx, nil
}

func ToAPITransactions(entries []*journal.Entry) ([]api.Transaction, error) {
	txs := make([]api.Transaction, 0, len(entries))
	for _, e := range entries {
		tx, err := ToAPITransaction(e)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func ToAPIInfo(info gateway.Info) api.GatewayInfo {
	return api.GatewayInfo{
		DisplayName:        info.DisplayName,
		HomepageUrl:        info.HomepageURL,
		DefaultCurrency:    info.DefaultCurrency,
		SupportedCountries: info.SupportedCountries,
		SupportedCardTypes: info.SupportedCardTypes,
		SupportsScrubbing:  info.SupportsScrubbing,
	}
}
