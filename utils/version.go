package utils

// REVISION is surfaced in every API envelope so client reports can be tied
// back to a deployment.
const REVISION = "0.3.1"
