package ledger

import "github.com/praiadomeio/app-ampm/internal/utils"

// newID generates record ids. Tests replace it for deterministic ids.
var newID = utils.GenerateUUID
