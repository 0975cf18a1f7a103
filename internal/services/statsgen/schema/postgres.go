package schema

// Postgres cannot index a plain view, so PacketsView is a materialized view.
var Postgres = Dialect{
	Name: "postgres",
	PacketsView: Object{
		Name:  PacketsViewName,
		Kind:  KindView,
		Probe: `SELECT CASE WHEN EXISTS (SELECT 1 FROM pg_matviews WHERE matviewname = 'PacketsView') THEN 1 ELSE 0 END`,
		Create: []string{
			`CREATE MATERIALIZED VIEW "PacketsView" AS
	SELECT I."packetID", M."collectorName" AS "Collector", I."timestamp", I."ipPacketSize", I."sourceIP", I."destinationIP",
		I."typeOfService", I."protocol", I."sourcePort", I."destinationPort", I."julianDay"
	FROM "PacketIndices" I
	INNER JOIN "PcapMetaData" M ON I."pcapFileProcessingLogID" = M."pcapFileProcessingLogID"
	WHERE I."sourceIP" NOT LIKE '%:%' AND I."destinationIP" NOT LIKE '%:%'`,
			`CREATE UNIQUE INDEX "PacketsViewIndex" ON "PacketsView" ("packetID")`,
			`CREATE INDEX "IX_NonClusteredIndex_Collector" ON "PacketsView" ("Collector") INCLUDE ("timestamp") WITH (fillfactor = 90)`,
		},
		Created: createdMessage(KindView, PacketsViewName),
	},
	ProtocolTypes: Object{
		Name:  ProtocolTypesName,
		Kind:  KindTable,
		Probe: `SELECT CASE WHEN EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'ProtocolTypes' AND table_type = 'BASE TABLE') THEN 1 ELSE 0 END`,
		Create: []string{
			`CREATE TABLE "ProtocolTypes" (
	"protocolTypeId" smallint NOT NULL CHECK ("protocolTypeId" BETWEEN 0 AND 255),
	"protocolType" varchar(30) NOT NULL,
	CONSTRAINT "PK_ProtocolTypes" PRIMARY KEY ("protocolTypeId")
)`,
			seedInsert(`"ProtocolTypes"`, ""),
		},
		Created: createdMessage(KindTable, ProtocolTypesName),
	},
}
