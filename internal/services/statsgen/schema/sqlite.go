package schema

// SQLite has no indexed views. The view is a plain view and its two
// named indexes live on the source tables it projects, so they outlive the
// view and are created with IF NOT EXISTS. The collector index cannot cover
// timestamp: that column lives on PacketIndices, not PcapMetaData.
var SQLite = Dialect{
	Name: "sqlite",
	PacketsView: Object{
		Name:  PacketsViewName,
		Kind:  KindView,
		Probe: `SELECT CASE WHEN EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'view' AND name = 'PacketsView') THEN 1 ELSE 0 END`,
		Create: []string{
			`CREATE VIEW PacketsView AS
	SELECT I.packetID, M.collectorName AS Collector, I.timestamp, I.ipPacketSize, I.sourceIP, I.destinationIP,
		I.typeOfService, I.protocol, I.sourcePort, I.destinationPort, I.julianDay
	FROM PacketIndices I
	INNER JOIN PcapMetaData M ON I.pcapFileProcessingLogID = M.pcapFileProcessingLogID
	WHERE I.sourceIP NOT LIKE '%:%' AND I.destinationIP NOT LIKE '%:%'`,
			`CREATE UNIQUE INDEX IF NOT EXISTS PacketsViewIndex ON PacketIndices (packetID)`,
			`CREATE INDEX IF NOT EXISTS IX_NonClusteredIndex_Collector ON PcapMetaData (collectorName)`,
		},
		Created: createdMessage(KindView, PacketsViewName),
	},
	ProtocolTypes: Object{
		Name:  ProtocolTypesName,
		Kind:  KindTable,
		Probe: `SELECT CASE WHEN EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'ProtocolTypes') THEN 1 ELSE 0 END`,
		Create: []string{
			`CREATE TABLE ProtocolTypes (
	protocolTypeId INTEGER NOT NULL PRIMARY KEY CHECK (protocolTypeId BETWEEN 0 AND 255),
	protocolType VARCHAR(30) NOT NULL
)`,
			seedInsert("ProtocolTypes", ""),
		},
		Created: createdMessage(KindTable, ProtocolTypesName),
	},
}
