package schema

// SQLServer provisions an indexed, schema-bound view and a clustered lookup table.
var SQLServer = Dialect{
	Name: "sqlserver",
	PacketsView: Object{
		Name:  PacketsViewName,
		Kind:  KindView,
		Probe: `IF EXISTS(SELECT * FROM SYS.VIEWS WHERE NAME = 'PacketsView') SELECT 1 ELSE SELECT 0`,
		Create: []string{
			`CREATE VIEW [dbo].[PacketsView] WITH SCHEMABINDING AS
	SELECT I.packetID, M.collectorName AS Collector, I.timestamp, I.ipPacketSize, I.sourceIP, I.destinationIP,
		I.typeOfService, I.protocol, I.sourcePort, I.destinationPort, I.julianDay
	FROM [dbo].PacketIndices I
	INNER JOIN [dbo].PcapMetaData M ON I.pcapFileProcessingLogID = M.pcapFileProcessingLogID
	WHERE I.sourceIP NOT LIKE '%:%' AND I.destinationIP NOT LIKE '%:%'`,
			`CREATE UNIQUE CLUSTERED INDEX [PacketsViewIndex] ON [dbo].[PacketsView]
(
	[packetID] ASC
) WITH (PAD_INDEX = OFF, STATISTICS_NORECOMPUTE = OFF, SORT_IN_TEMPDB = OFF, IGNORE_DUP_KEY = OFF, DROP_EXISTING = OFF, ONLINE = OFF, ALLOW_ROW_LOCKS = ON, ALLOW_PAGE_LOCKS = ON, OPTIMIZE_FOR_SEQUENTIAL_KEY = OFF) ON [PRIMARY]`,
			`CREATE NONCLUSTERED INDEX [IX_NonClusteredIndex_Collector] ON [dbo].[PacketsView]
(
	[Collector] ASC
)
INCLUDE([timestamp]) WITH (PAD_INDEX = OFF, STATISTICS_NORECOMPUTE = OFF, SORT_IN_TEMPDB = OFF, DROP_EXISTING = OFF, ONLINE = OFF, ALLOW_ROW_LOCKS = ON, ALLOW_PAGE_LOCKS = ON, FILLFACTOR = 90, OPTIMIZE_FOR_SEQUENTIAL_KEY = OFF) ON [PRIMARY]`,
		},
		Created: createdMessage(KindView, PacketsViewName),
	},
	ProtocolTypes: Object{
		Name:  ProtocolTypesName,
		Kind:  KindTable,
		Probe: `IF EXISTS(SELECT * FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_NAME = 'ProtocolTypes') SELECT 1 ELSE SELECT 0`,
		Create: []string{
			`CREATE TABLE [ProtocolTypes](
	[protocolTypeId] [tinyint] NOT NULL,
	[protocolType] [varchar](30) NOT NULL,
CONSTRAINT [PK_ProtocolTypes] PRIMARY KEY CLUSTERED
(
	[protocolTypeId] ASC
) WITH (PAD_INDEX = OFF, STATISTICS_NORECOMPUTE = OFF, IGNORE_DUP_KEY = OFF, ALLOW_ROW_LOCKS = ON, ALLOW_PAGE_LOCKS = ON) ON [PRIMARY]
) ON [PRIMARY]`,
			seedInsert("[ProtocolTypes]", "N"),
		},
		Created: createdMessage(KindTable, ProtocolTypesName),
	},
}
