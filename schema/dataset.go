package schema

import "time"

// DatasetRecord is the stored trace of one completed upload session:
// the manifest, the receipt of its blob, the receipt of the biological age
// blob and, when a mint was requested, the ledger transaction id.
type DatasetRecord struct {
	ID           string          `json:"id" bson:"_id"`
	Owner        string          `json:"owner" bson:"owner"`
	Manifest     DatasetManifest `json:"manifest" bson:"manifest"`
	ManifestBlob BlobReceipt     `json:"manifest_blob" bson:"manifest_blob"`
	AgeBlob      BlobReceipt     `json:"age_blob" bson:"age_blob"`
	MintTxID     string          `json:"mint_tx_id,omitempty" bson:"mint_tx_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at" bson:"created_at"`
}
