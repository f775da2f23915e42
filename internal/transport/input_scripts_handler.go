package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

// InputScriptsPath is the REST route served by InputScriptsHandler.
const InputScriptsPath = "/v1/tx/{txid}/input-scripts"

type (
	scriptJSON struct {
		Hex string `json:"hex"`
		Asm string `json:"asm"`
	}
	inputJSON struct {
		Index         uint32      `json:"index"`
		PrevTxID      string      `json:"prev_txid"`
		PrevVout      uint32      `json:"prev_vout"`
		SpendType     string      `json:"spend_type"`
		Incomplete    bool        `json:"incomplete"`
		RedeemScript  *scriptJSON `json:"redeem_script"`
		WitnessScript *scriptJSON `json:"witness_script"`
		PrevAddress   string      `json:"prev_address,omitempty"`
	}
	inputScriptsResponse struct {
		TxID      string      `json:"txid"`
		Network   string      `json:"network"`
		BlockTime *time.Time  `json:"block_time,omitempty"`
		Inputs    []inputJSON `json:"inputs"`
	}
	errorResponse struct {
		Error string `json:"error"`
	}
)

// InputScriptsHandler serves the inner scripts of every input of a transaction.
type InputScriptsHandler struct {
	classifier InputScriptsClassifier
	network    network.Network
	logger     *zap.Logger
}

// NewInputScriptsHandler builds a handler answering for transactions of network n.
func NewInputScriptsHandler(classifier InputScriptsClassifier, n network.Network, logger *zap.Logger) *InputScriptsHandler {
	return &InputScriptsHandler{classifier: classifier, network: n, logger: logger}
}

// Register mounts the handler on a gateway mux.
func (h *InputScriptsHandler) Register(mux *gwruntime.ServeMux) error {
	return mux.HandlePath(http.MethodGet, InputScriptsPath, h.ServeInputScripts)
}

// ServeInputScripts handles GET /v1/tx/{txid}/input-scripts.
func (h *InputScriptsHandler) ServeInputScripts(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	txid := pathParams["txid"]
	if _, err := chainhash.NewHashFromStr(txid); err != nil || len(txid) != chainhash.MaxHashStringSize {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid txid"})
		return
	}

	inputs, err := h.classifier.Classify(r.Context(), txid)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, r.Context().Err()) {
			status = http.StatusServiceUnavailable
		}
		h.logger.Error("classify transaction inputs failed", zap.String("txid", txid), zap.Error(err))
		h.writeJSON(w, status, errorResponse{Error: "classification failed"})
		return
	}

	resp := inputScriptsResponse{
		TxID:    txid,
		Network: h.network.String(),
		Inputs:  make([]inputJSON, 0, len(inputs)),
	}
	for _, in := range inputs {
		if resp.BlockTime == nil && !in.BlockTime.IsZero() {
			t := in.BlockTime
			resp.BlockTime = &t
		}
		resp.Inputs = append(resp.Inputs, toInputJSON(in))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func toInputJSON(in model.InputScripts) inputJSON {
	out := inputJSON{
		Index:       in.Index,
		PrevTxID:    in.PrevTxID,
		PrevVout:    in.PrevVout,
		SpendType:   string(in.SpendType),
		Incomplete:  in.Incomplete,
		PrevAddress: in.PrevAddress,
	}
	if in.HasRedeemScript {
		out.RedeemScript = &scriptJSON{Hex: in.RedeemScriptHex, Asm: in.RedeemScriptAsm}
	}
	if in.HasWitnessScript {
		out.WitnessScript = &scriptJSON{Hex: in.WitnessScriptHex, Asm: in.WitnessScriptAsm}
	}
	return out
}

func (h *InputScriptsHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write input scripts response failed", zap.Int("status", status), zap.Error(err))
	}
}
